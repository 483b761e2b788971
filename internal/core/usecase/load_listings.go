package usecase

import (
	"context"

	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
)

// LoadListingsUseCase - оркестратор загрузки результатов поиска.
// Единственная точка, через которую пишется ячейка search.
type LoadListingsUseCase struct {
	backend port.ListingBackendPort
	results port.ResultStorePort
}

func NewLoadListingsUseCase(
	backend port.ListingBackendPort,
	results port.ResultStorePort,
) *LoadListingsUseCase {
	return &LoadListingsUseCase{
		backend: backend,
		results: results,
	}
}

// Execute выполняет один цикл загрузки: нормализует фильтры, синхронно
// взводит loading, ходит на бэкенд и коммитит результат целиком.
// Наружу ошибки не протекают: неудачная загрузка - это восстановимое
// состояние, читатели остаются на предыдущих (stale) записях.
func (uc *LoadListingsUseCase) Execute(ctx context.Context, filters domain.FilterState) domain.ResultSet {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadListings",
	})

	// Шаг 1: Канонизируем фильтры. Дальше сети уходит только
	// нормализованное состояние.
	normalized := filters.Normalize()
	ucLogger = ucLogger.WithFields(port.Fields{
		"city":     normalized.City,
		"purpose":  normalized.Purpose,
		"category": normalized.Category,
	})
	ucLogger.Info("Use case started", nil)

	// Шаг 2: Взводим loading ДО первой точки ожидания, чтобы читатели
	// увидели индикатор загрузки без задержки. Полученное поколение -
	// наш пропуск на Commit: если за время запроса начнется более новый,
	// наш результат будет молча отброшен (побеждает последний начатый).
	generation := uc.results.BeginLoad(domain.SlotSearch, normalized)

	records, err := uc.backend.FetchListings(ctx, normalized.Category, normalized)
	if err != nil {
		// Stale-but-valid лучше, чем пусто: записи не трогаем,
		// только снимаем loading и логируем.
		ucLogger.Error("Failed to fetch listings, keeping previous results", err, nil)
		uc.results.Fail(domain.SlotSearch, generation)
		return uc.results.Snapshot(domain.SlotSearch)
	}

	// Шаг 3: Атомарная замена - читатели никогда не видят
	// наполовину обновленный список.
	if !uc.results.Commit(domain.SlotSearch, generation, records) {
		ucLogger.Debug("Result superseded by a newer request, dropping", port.Fields{
			"generation": generation,
		})
		return uc.results.Snapshot(domain.SlotSearch)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"records_found": len(records),
	})
	return uc.results.Snapshot(domain.SlotSearch)
}
