package warehouses

import (
	"time"
)

// Warehouse represents a stock location
type Warehouse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WarehouseForm struct {
	Code     string `json:"code" validate:"required,max=32"`
	Name     string `json:"name" validate:"required,max=128"`
	Address  string `json:"address" validate:"max=500"`
	IsActive *bool  `json:"is_active"`
}

func (f WarehouseForm) toWarehouse() Warehouse {
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return Warehouse{Code: f.Code, Name: f.Name, Address: f.Address, IsActive: active}
}
