package usecase

import (
	"context"

	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
)

// GetActiveFiltersUseCase отдает фильтры последнего поискового запроса -
// по ним UI восстанавливает состояние панели фильтров.
type GetActiveFiltersUseCase struct {
	results port.ResultStorePort
}

func NewGetActiveFiltersUseCase(results port.ResultStorePort) *GetActiveFiltersUseCase {
	return &GetActiveFiltersUseCase{results: results}
}

func (uc *GetActiveFiltersUseCase) Execute(ctx context.Context) domain.FilterState {
	return uc.results.ActiveFilters()
}
