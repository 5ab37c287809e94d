package tasks

import (
	"encoding/json"

	"carelink/models"

	"github.com/hibiken/asynq"
)

const TypeSendOTP = "otp:send"

// NewOTPDeliveryTask wraps an OTP delivery payload for the background worker.
func NewOTPDeliveryTask(payload models.OTPDeliveryPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendOTP, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
