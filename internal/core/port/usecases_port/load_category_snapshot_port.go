package usecases_port

import (
	"context"
	"listing-query-service/internal/core/domain"
)

type LoadCategorySnapshotUseCasePort interface {
	// Execute загружает коммерческую и земельную коллекции без фильтров.
	// Запросы независимы: неудача одного не трогает результат другого.
	Execute(ctx context.Context) (commercial domain.ResultSet, plots domain.ResultSet)
}
