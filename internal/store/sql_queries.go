package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/davolkov/inventar/models"
)

const (
	insertItem = `INSERT INTO items (id, name, description, photo_key, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, description, photo_key, created_at;`

	listItems = `SELECT id, name, description, photo_key, created_at
	FROM items;`

	getItem = `SELECT id, name, description, photo_key, created_at
	FROM items
	WHERE id = $1;`

	setItemPhotoKey = `UPDATE items
	SET photo_key = $1
	WHERE id = $2
	RETURNING id, name, description, photo_key, created_at;`

	deleteItem = `DELETE FROM items
	WHERE id = $1
	RETURNING id, name, description, photo_key, created_at;`
)

// itemColumns is the canonical RETURNING / SELECT column list.
const itemColumns = "id, name, description, photo_key, created_at"

// buildUpdateItemQuery builds the partial UPDATE statement for an item.
// Only non-empty patch fields become SET clauses, so an explicit empty
// string never clears a stored value. Callers must not invoke it with an
// empty patch.
func buildUpdateItemQuery(id string, patch models.ItemPatch) (string, []any, error) {
	builder := sq.Update("items").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns)

	if patch.Name != "" {
		builder = builder.Set("name", patch.Name)
	}
	if patch.Description != "" {
		builder = builder.Set("description", patch.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
