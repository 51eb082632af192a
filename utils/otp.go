package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// GenerateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the
// desired length.
func GenerateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// StoreLoginOTP caches an OTP for an operator login with a 5-minute TTL.
func StoreLoginOTP(ctx context.Context, operatorID, otp string) error {
	client := GetOTPCacheClient()
	key := fmt.Sprintf("otp:login:%s", operatorID)
	if err := client.Set(ctx, key, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache login OTP", zap.Error(err))
		return fmt.Errorf("failed to store OTP")
	}
	return nil
}

// VerifyLoginOTP compares a provided OTP against the cached one and consumes
// it on success.
func VerifyLoginOTP(ctx context.Context, operatorID, providedOTP string) error {
	client := GetOTPCacheClient()
	key := fmt.Sprintf("otp:login:%s", operatorID)

	stored, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
