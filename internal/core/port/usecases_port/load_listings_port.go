package usecases_port

import (
	"context"
	"listing-query-service/internal/core/domain"
)

type LoadListingsUseCasePort interface {
	// Execute запускает загрузку по фильтрам и возвращает снапшот ячейки
	// поиска после завершения. Ошибки бэкенда не протекают наружу:
	// при неудаче снапшот содержит предыдущие (stale) записи.
	Execute(ctx context.Context, filters domain.FilterState) domain.ResultSet
}
