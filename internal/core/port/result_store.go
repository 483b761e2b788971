package port

import (
	"listing-query-service/internal/core/domain"
)

// ResultStorePort - кэш результатов на время сессии приложения.
// Единственный писатель - оркестратор загрузки (use cases), читателей
// может быть сколько угодно.
//
// Против гонки "медленный старый ответ перетирает новый" используется
// fencing: BeginLoad выдает монотонно растущий номер поколения для ячейки,
// Commit/Fail с устаревшим поколением игнорируются. Побеждает последний
// НАЧАТЫЙ запрос, а не последний завершившийся.
type ResultStorePort interface {
	// BeginLoad синхронно взводит loading=true для ячейки, запоминает
	// фильтры запроса и возвращает номер поколения для Commit/Fail.
	BeginLoad(slot domain.Slot, filters domain.FilterState) uint64

	// Commit атомарно заменяет записи ячейки. Возвращает false, если
	// поколение устарело - тогда состояние не меняется.
	Commit(slot domain.Slot, generation uint64, records []domain.PropertyRecord) bool

	// Fail фиксирует неудачную загрузку: снимает loading, записи
	// предыдущего успешного ответа остаются как есть (stale-but-valid).
	Fail(slot domain.Slot, generation uint64)

	// Snapshot возвращает копию текущего состояния ячейки.
	Snapshot(slot domain.Slot) domain.ResultSet

	// ActiveFilters - фильтры последнего поискового запроса.
	ActiveFilters() domain.FilterState

	// Subscribe регистрирует слушателя, который будет синхронно вызван
	// после каждого изменения ячейки. Возвращает функцию отписки.
	Subscribe(listener func(slot domain.Slot)) (unsubscribe func())
}
