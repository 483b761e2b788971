package usecase

import (
	"context"

	"listing-query-service/internal/constants"
	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
)

// LoadFeaturedUseCase загружает подборку для главной страницы:
// residential-коллекция без фильтров, первые FeaturedLimit записей
// в порядке ответа бэкенда. Отдельная ячейка, с поиском не связана.
type LoadFeaturedUseCase struct {
	backend port.ListingBackendPort
	results port.ResultStorePort
}

func NewLoadFeaturedUseCase(
	backend port.ListingBackendPort,
	results port.ResultStorePort,
) *LoadFeaturedUseCase {
	return &LoadFeaturedUseCase{
		backend: backend,
		results: results,
	}
}

func (uc *LoadFeaturedUseCase) Execute(ctx context.Context) domain.ResultSet {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadFeatured",
	})
	ucLogger.Info("Use case started", nil)

	// Фиксированный "пустой" запрос: без категории и без ценовых рамок.
	generation := uc.results.BeginLoad(domain.SlotFeatured, domain.FilterState{})

	records, err := uc.backend.FetchListings(ctx, domain.CategoryResidential, domain.FilterState{})
	if err != nil {
		ucLogger.Error("Failed to fetch featured listings, keeping previous results", err, nil)
		uc.results.Fail(domain.SlotFeatured, generation)
		return uc.results.Snapshot(domain.SlotFeatured)
	}

	if len(records) > constants.FeaturedLimit {
		records = records[:constants.FeaturedLimit]
	}

	if !uc.results.Commit(domain.SlotFeatured, generation, records) {
		return uc.results.Snapshot(domain.SlotFeatured)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"records_found": len(records),
	})
	return uc.results.Snapshot(domain.SlotFeatured)
}
