package models

import "time"

// ItemResponse is the external representation of an [Item]. PhotoURL is a
// derived access locator built by the HTTP layer (nil when the item has no
// photo); the raw storage key is never exposed.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"inventory_name"`
	Description string    `json:"description"`
	PhotoURL    *string   `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteResponse confirms a successful item removal.
type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
