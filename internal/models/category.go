package models

// Category is a node in the admin-managed category tree. ParentID is nil for
// top-level categories.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id" gorm:"index"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}
