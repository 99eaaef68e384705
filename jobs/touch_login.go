package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	jobmetrics "github.com/odyssey-erp/odyssey-warehouse/internal/jobs"
)

// LoginToucher persists the last login time of an account.
type LoginToucher interface {
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// TouchLoginJob handles TaskAccountTouchLogin.
type TouchLoginJob struct {
	Toucher LoginToucher
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewTouchLoginJob initialises the handler.
func NewTouchLoginJob(toucher LoginToucher, logger *slog.Logger, metrics *jobmetrics.Metrics) *TouchLoginJob {
	return &TouchLoginJob{Toucher: toucher, Logger: logger, Metrics: metrics}
}

// Handle updates users.last_login_at. Malformed payloads and deleted accounts
// are not retried.
func (j *TouchLoginJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Toucher == nil {
		return errors.New("touch login: handler not configured")
	}
	tracker := j.Metrics.Track(TaskAccountTouchLogin)
	defer func() {
		err = tracker.End(err)
	}()

	var payload TouchLoginPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("touch login: decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.AccountID <= 0 || payload.At.IsZero() {
		return fmt.Errorf("touch login: incomplete payload: %w", asynq.SkipRetry)
	}

	if err := j.Toucher.TouchLastLogin(ctx, payload.AccountID, payload.At); err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			j.logger().Warn("touch login: account gone", slog.Int64("account_id", payload.AccountID))
			return fmt.Errorf("touch login: account %d: %w", payload.AccountID, asynq.SkipRetry)
		}
		return fmt.Errorf("touch login: %w", err)
	}
	return nil
}

func (j *TouchLoginJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
