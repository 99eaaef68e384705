package products

type ProductForm struct {
	Code        string  `json:"code" validate:"required,max=64"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	CategoryID  *int64  `json:"category_id" validate:"omitempty,gt=0"`
	Unit        string  `json:"unit" validate:"required,max=16"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (f ProductForm) toProduct() Product {
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return Product{
		Code:        f.Code,
		Name:        f.Name,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Unit:        f.Unit,
		Price:       f.Price,
		IsActive:    active,
	}
}
