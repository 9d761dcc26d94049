package models

import "io"

// PhotoUpload carries the binary content of an uploaded photo together with
// the original file extension (including the leading dot, e.g. ".jpg").
// The extension is advisory; the photo store sanitizes it before use.
type PhotoUpload struct {
	Content io.Reader
	Ext     string
}

// UpdateItemRequest is the JSON body of PUT /inventory/{id}.
// Absent or empty fields leave the stored values unchanged.
type UpdateItemRequest struct {
	Name        string `json:"inventory_name"`
	Description string `json:"description"`
}

// SearchRequest is the JSON body of POST /search.
type SearchRequest struct {
	ID       string `json:"id"`
	HasPhoto bool   `json:"has_photo"`
}
