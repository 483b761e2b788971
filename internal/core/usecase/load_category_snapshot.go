package usecase

import (
	"context"
	"sync"

	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
)

// LoadCategorySnapshotUseCase наполняет ячейки категорийных страниц:
// коммерческая недвижимость и участки, без фильтров. Два запроса
// выполняются параллельно и полностью независимы - неудача одного
// не откатывает и не блокирует другой.
type LoadCategorySnapshotUseCase struct {
	backend port.ListingBackendPort
	results port.ResultStorePort
}

func NewLoadCategorySnapshotUseCase(
	backend port.ListingBackendPort,
	results port.ResultStorePort,
) *LoadCategorySnapshotUseCase {
	return &LoadCategorySnapshotUseCase{
		backend: backend,
		results: results,
	}
}

func (uc *LoadCategorySnapshotUseCase) Execute(ctx context.Context) (domain.ResultSet, domain.ResultSet) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadCategorySnapshot",
	})
	ucLogger.Info("Use case started", nil)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		uc.loadSlot(ctx, ucLogger, domain.SlotCommercial, domain.CategoryCommercial)
	}()
	go func() {
		defer wg.Done()
		uc.loadSlot(ctx, ucLogger, domain.SlotPlots, domain.CategoryPlots)
	}()

	wg.Wait()

	ucLogger.Info("Use case finished", nil)
	return uc.results.Snapshot(domain.SlotCommercial), uc.results.Snapshot(domain.SlotPlots)
}

func (uc *LoadCategorySnapshotUseCase) loadSlot(ctx context.Context, logger port.LoggerPort, slot domain.Slot, category domain.Category) {
	slotLogger := logger.WithFields(port.Fields{"slot": slot})

	generation := uc.results.BeginLoad(slot, domain.FilterState{})

	records, err := uc.backend.FetchListings(ctx, category, domain.FilterState{})
	if err != nil {
		slotLogger.Error("Failed to fetch category snapshot, keeping previous results", err, nil)
		uc.results.Fail(slot, generation)
		return
	}

	if uc.results.Commit(slot, generation, records) {
		slotLogger.Info("Category snapshot committed", port.Fields{
			"records_found": len(records),
		})
	}
}
