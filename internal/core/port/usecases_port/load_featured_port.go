package usecases_port

import (
	"context"
	"listing-query-service/internal/core/domain"
)

type LoadFeaturedUseCasePort interface {
	Execute(ctx context.Context) domain.ResultSet
}
