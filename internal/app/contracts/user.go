package contracts

import (
	"context"
	"medflow-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}
