package history

import (
	"context"
	"time"

	"boxful/internal/infrastructure/api"
)

type Client interface {
	ListOrders(ctx context.Context, token string, startDate, endDate *time.Time) ([]api.OrderRecord, error)
}
