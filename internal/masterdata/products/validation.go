package products

import (
	"strings"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

func (s *Service) validate(p *Product) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	p.Name = strings.TrimSpace(p.Name)
	p.Unit = strings.TrimSpace(p.Unit)
	if p.Code == "" {
		return shared.Invalid("product code is required")
	}
	if p.Name == "" {
		return shared.Invalid("product name is required")
	}
	if p.Unit == "" {
		return shared.Invalid("product unit is required")
	}
	if p.Price < 0 {
		return shared.Invalid("product price must not be negative")
	}
	return nil
}
