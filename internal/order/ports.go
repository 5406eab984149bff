package order

import (
	"context"

	"boxful/internal/infrastructure/api"
)

type Client interface {
	CreateOrder(ctx context.Context, token string, req api.CreateOrderRequest) error
}
