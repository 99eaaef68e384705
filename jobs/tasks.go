package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAccountTouchLogin stamps an account's last successful login.
	TaskAccountTouchLogin = "account:touch_login"
)

// TouchLoginPayload identifies the account and the login instant.
type TouchLoginPayload struct {
	AccountID int64     `json:"account_id"`
	At        time.Time `json:"at"`
}

// NewTouchLoginTask constructs an Asynq task.
func NewTouchLoginTask(accountID int64, at time.Time) (*asynq.Task, error) {
	data, err := json.Marshal(TouchLoginPayload{AccountID: accountID, At: at.UTC()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAccountTouchLogin, data, asynq.Queue(QueueDefault), asynq.MaxRetry(3)), nil
}
