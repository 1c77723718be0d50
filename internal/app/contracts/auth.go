package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.User, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	GetCurrentUser(ctx context.Context, request *requests.GetCurrentUser) (*responses.User, error)
	LogoutUser(ctx context.Context, request *requests.LogoutUser) error
}
