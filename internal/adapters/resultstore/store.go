package resultstore

import (
	"sync"

	"listing-query-service/internal/core/domain"
)

// slotState - внутреннее состояние одной ячейки.
// Жизненный цикл: Empty -> Loading -> Ready, дальше Ready -> Loading -> Ready
// на каждую смену фильтров. Отдельного состояния "Error" нет: неудачная
// загрузка оставляет Ready с предыдущими записями.
type slotState struct {
	records []domain.PropertyRecord

	// filters - фильтры, по которым получены records ("as-of" снапшот).
	// pendingFilters - фильтры последнего начатого запроса; переезжают
	// в filters при успешном Commit.
	filters        domain.FilterState
	pendingFilters domain.FilterState

	// issued - поколение последнего начатого запроса,
	// committed - поколение последнего применённого Commit/Fail.
	issued    uint64
	committed uint64
}

func (s *slotState) loading() bool {
	return s.issued > s.committed
}

// InMemoryResultStore - реализация ResultStorePort в памяти процесса.
// Явный инжектируемый объект вместо глобального мутабельного состояния:
// создается один раз на сессию приложения, умирает вместе с ней.
type InMemoryResultStore struct {
	mu    sync.Mutex
	slots map[domain.Slot]*slotState

	// Фильтры последнего поискового запроса (ячейка search).
	activeFilters domain.FilterState

	listenersMu sync.Mutex
	listeners   map[int]func(slot domain.Slot)
	nextListener int
}

func NewInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{
		slots:         make(map[domain.Slot]*slotState),
		activeFilters: domain.DefaultFilters(),
		listeners:     make(map[int]func(slot domain.Slot)),
	}
}

func (s *InMemoryResultStore) slot(slot domain.Slot) *slotState {
	state, ok := s.slots[slot]
	if !ok {
		state = &slotState{}
		s.slots[slot] = state
	}
	return state
}

// BeginLoad реализует ResultStorePort.
func (s *InMemoryResultStore) BeginLoad(slot domain.Slot, filters domain.FilterState) uint64 {
	s.mu.Lock()
	state := s.slot(slot)
	state.issued++
	state.pendingFilters = filters
	generation := state.issued
	if slot == domain.SlotSearch {
		s.activeFilters = filters
	}
	s.mu.Unlock()

	s.notify(slot)
	return generation
}

// Commit реализует ResultStorePort. Устаревшее поколение игнорируется:
// записи более нового запроса не перетираются медленным старым ответом.
func (s *InMemoryResultStore) Commit(slot domain.Slot, generation uint64, records []domain.PropertyRecord) bool {
	s.mu.Lock()
	state := s.slot(slot)
	if generation < state.issued || generation <= state.committed {
		s.mu.Unlock()
		return false
	}
	state.committed = generation
	state.records = records
	state.filters = state.pendingFilters
	s.mu.Unlock()

	s.notify(slot)
	return true
}

// Fail реализует ResultStorePort.
func (s *InMemoryResultStore) Fail(slot domain.Slot, generation uint64) {
	s.mu.Lock()
	state := s.slot(slot)
	if generation < state.issued || generation <= state.committed {
		// Нас уже обогнал более новый запрос - его Commit/Fail и решит,
		// когда снимать loading.
		s.mu.Unlock()
		return
	}
	state.committed = generation
	s.mu.Unlock()

	s.notify(slot)
}

// Snapshot реализует ResultStorePort. Возвращается копия среза, чтобы
// читатель не мог дотянуться до внутреннего состояния кэша.
func (s *InMemoryResultStore) Snapshot(slot domain.Slot) domain.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.slot(slot)
	records := make([]domain.PropertyRecord, len(state.records))
	copy(records, state.records)

	return domain.ResultSet{
		Records: records,
		Loading: state.loading(),
		Filters: state.filters,
	}
}

// ActiveFilters реализует ResultStorePort.
func (s *InMemoryResultStore) ActiveFilters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeFilters
}

// Subscribe реализует ResultStorePort.
func (s *InMemoryResultStore) Subscribe(listener func(slot domain.Slot)) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// notify синхронно оповещает слушателей. Вызывается уже после отпускания
// основного мьютекса, чтобы слушатель мог читать Snapshot без дедлока.
func (s *InMemoryResultStore) notify(slot domain.Slot) {
	s.listenersMu.Lock()
	listeners := make([]func(domain.Slot), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(slot)
	}
}
