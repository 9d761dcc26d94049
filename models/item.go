package models

import "time"

// Item is a single registered inventory record. The PhotoKey field holds the
// raw storage key of the item's photo asset (empty when the item has no
// photo); it is never serialized directly — the HTTP layer renders a derived
// photo locator instead.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"inventory_name"`
	Description string    `json:"description"`
	PhotoKey    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasPhoto reports whether the item currently references a photo asset.
func (i Item) HasPhoto() bool {
	return i.PhotoKey != ""
}

// ItemPatch describes a partial update of an item. Only non-empty fields
// overwrite stored values; an empty string leaves the stored value unchanged.
type ItemPatch struct {
	Name        string
	Description string
}

// Empty reports whether the patch carries no fields to apply.
func (p ItemPatch) Empty() bool {
	return p.Name == "" && p.Description == ""
}

// Apply returns a copy of item with the patch fields applied.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != "" {
		item.Name = p.Name
	}
	if p.Description != "" {
		item.Description = p.Description
	}
	return item
}
