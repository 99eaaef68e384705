package warehouses

import (
	"strings"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

func (s *Service) validate(w *Warehouse) error {
	w.Code = strings.ToUpper(strings.TrimSpace(w.Code))
	w.Name = strings.TrimSpace(w.Name)
	w.Address = strings.TrimSpace(w.Address)
	if w.Code == "" {
		return shared.Invalid("warehouse code is required")
	}
	if w.Name == "" {
		return shared.Invalid("warehouse name is required")
	}
	return nil
}
