package catalog

import (
	"github.com/google/uuid"
)

// StatusCategory maps to the status_categories table. Categories define the
// Kanban columns: the board orders them by CategoryOrder, which is unique
// among active categories.
type StatusCategory struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CategoryName  string    `db:"category_name" json:"category_name"`
	CategoryOrder int       `db:"category_order" json:"category_order"`
	ColorCode     *string   `db:"color_code" json:"color_code,omitempty"`
	Description   *string   `db:"description" json:"description,omitempty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
}
