package operator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"porter/models"
	"porter/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionDuration = 12 * time.Hour

var validRoles = map[string]bool{
	"frontdesk":    true,
	"housekeeping": true,
	"admin":        true,
}

// Register creates a new dashboard operator account.
func (s *DefaultOperatorService) Register(ctx context.Context, name, email, password, role string) (*models.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("name, email and a password of at least 8 characters are required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("role must be one of frontdesk, housekeeping, admin")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing operator: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an operator with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	op := models.Operator{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	id, err := s.Repo.Create(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}
	op.ID = id
	return &op, nil
}

// Login checks the password and emails a one-time passcode. It returns the
// operator ID the caller must echo back to VerifyOTP.
func (s *DefaultOperatorService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	op, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up operator: %w", err)
	}
	if op == nil {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	otp, err := utils.GenerateSecureOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := utils.StoreLoginOTP(ctx, op.ID, otp); err != nil {
		return "", err
	}

	body := fmt.Sprintf("<p>Your Porter dashboard sign-in code is <b>%s</b>. It expires in 5 minutes.</p>", otp)
	if err := s.Mailer.Send(op.Email, "Porter sign-in code", body); err != nil {
		s.Logger.Error("Failed to send OTP email", zap.String("operatorId", op.ID), zap.Error(err))
		return "", fmt.Errorf("failed to send OTP email")
	}

	return op.ID, nil
}

// VerifyOTP consumes the emailed passcode and issues a session token. The
// token hash is stored so a single revocation invalidates the session.
func (s *DefaultOperatorService) VerifyOTP(ctx context.Context, operatorID, otp string) (string, error) {
	if err := utils.VerifyLoginOTP(ctx, operatorID, otp); err != nil {
		return "", err
	}

	op, err := s.Repo.GetByID(ctx, operatorID)
	if err != nil {
		return "", fmt.Errorf("failed to look up operator: %w", err)
	}

	token, err := utils.GenerateToken(op.ID, op.Email, sessionDuration)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	key := fmt.Sprintf("auth:token:%s", op.ID)
	if err := utils.GetAuthCacheClient().Set(ctx, key, utils.HashToken(token), sessionDuration).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Revoke invalidates the operator's active session.
func (s *DefaultOperatorService) Revoke(ctx context.Context, operatorID string) error {
	key := fmt.Sprintf("auth:token:%s", operatorID)
	return utils.GetAuthCacheClient().Del(ctx, key).Err()
}

// GetByID returns an operator by ID.
func (s *DefaultOperatorService) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	return s.Repo.GetByID(ctx, id)
}
