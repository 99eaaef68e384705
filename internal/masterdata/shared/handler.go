package shared

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/httpx"
)

// ParseID reads the {id} URL parameter.
func ParseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Respond writes err through the shared envelope, logging unexpected failures.
func Respond(logger *slog.Logger, w http.ResponseWriter, op string, err error) {
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrDuplicate) && !errors.Is(err, ErrValidation) {
		logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
