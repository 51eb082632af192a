package operator

import (
	"context"

	operatorRepo "porter/database/repository/operator"
	"porter/models"
	"porter/services/mailer"

	"go.uber.org/zap"
)

// OperatorService manages dashboard operator accounts and their sessions.
// Login is two-step: password check, then an emailed one-time passcode.
type OperatorService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.Operator, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyOTP(ctx context.Context, operatorID, otp string) (string, error)
	Revoke(ctx context.Context, operatorID string) error
	GetByID(ctx context.Context, id string) (*models.Operator, error)
}

// DefaultOperatorService implements OperatorService.
type DefaultOperatorService struct {
	Repo   operatorRepo.OperatorRepository
	Mailer mailer.Mailer
	Logger *zap.Logger
}
