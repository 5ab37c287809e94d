package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GenerateSecureOTP generates a secure random numeric OTP of the given length.
func GenerateSecureOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0') + byte(n.Int64())
	}
	return string(digits), nil
}

func otpKey(facilityID, channel string) string {
	return fmt.Sprintf("otp:%s:%s", facilityID, channel)
}

// StoreOTP caches the passcode for the facility/channel pair with the
// standard OTP TTL. A resend overwrites the previous code.
func StoreOTP(ctx context.Context, facilityID, channel, otp string) error {
	client := GetOTPCacheClient()
	if err := client.Set(ctx, otpKey(facilityID, channel), otp, OTPTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to store OTP")
	}
	return nil
}

// VerifyOTPRecord retrieves the stored OTP and compares it to the provided
// one. On a match the code is consumed.
func VerifyOTPRecord(ctx context.Context, facilityID, channel, providedOTP string) error {
	client := GetOTPCacheClient()
	stored, err := client.Get(ctx, otpKey(facilityID, channel)).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != providedOTP {
		return fmt.Errorf("OTP does not match")
	}
	if err := client.Del(ctx, otpKey(facilityID, channel)).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}

// SendSMSMessage delivers a text to the given phone number. Replace the body
// with the actual SMS gateway integration.
func SendSMSMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}

// SendEmailMessage delivers a message to the given address. Replace the body
// with the actual mail provider integration.
func SendEmailMessage(email, subject, message string) error {
	GetLogger().Sugar().Infof("Sending email to %s [%s]: %s", email, subject, message)
	return nil
}
