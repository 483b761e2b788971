package usecases_port

import (
	"context"
	"listing-query-service/internal/core/domain"
)

type GetActiveFiltersUseCasePort interface {
	Execute(ctx context.Context) domain.FilterState
}
