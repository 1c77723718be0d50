package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, expiresIn time.Duration) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}
