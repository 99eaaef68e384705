package categories

import (
	"strings"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

func (s *Service) validate(c *Category) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Name = strings.TrimSpace(c.Name)
	if c.Code == "" {
		return shared.Invalid("category code is required")
	}
	if c.Name == "" {
		return shared.Invalid("category name is required")
	}
	return nil
}
