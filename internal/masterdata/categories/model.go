package categories

import "time"

// Category represents a product category
type Category struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryForm struct {
	Code        string `json:"code" validate:"required,max=32"`
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=1000"`
}

func (f CategoryForm) toCategory() Category {
	return Category{Code: f.Code, Name: f.Name, Description: f.Description}
}
