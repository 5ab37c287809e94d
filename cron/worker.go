package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"carelink/config"
	"carelink/models"
	"carelink/services/tasks"
	"carelink/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitOTPWorker runs the async OTP delivery worker in background.
func InitOTPWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendOTP, handleOTPDeliveryTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[OTPWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OTPWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OTPWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleOTPDeliveryTask(ctx context.Context, task *asynq.Task) error {
	var p models.OTPDeliveryPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[OTPHandler] Invalid payload: %v", err)
		return err
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		p.Code, int(utils.OTPTTL.Minutes()))

	switch p.Channel {
	case "sms":
		return utils.SendSMSMessage(p.Destination, message)
	case "email":
		return utils.SendEmailMessage(p.Destination, "Verification code", message)
	default:
		log.Printf("[OTPHandler] Unknown channel: %s", p.Channel)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[OTPWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
