package auth

import (
	"context"

	"boxful/internal/infrastructure/api"
)

type Client interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}
