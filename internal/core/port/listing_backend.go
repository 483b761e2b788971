package port

import (
	"context"
	"listing-query-service/internal/core/domain"
)

// ListingBackendPort - контракт бэкенда объявлений. Категория определяет,
// в какую коллекцию пойдет запрос; фильтры транслируются в query-параметры
// (незаданные поля не отправляются вообще).
type ListingBackendPort interface {
	FetchListings(ctx context.Context, category domain.Category, filters domain.FilterState) ([]domain.PropertyRecord, error)
}
