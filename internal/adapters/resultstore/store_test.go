package resultstore

import (
	"testing"

	"listing-query-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) domain.PropertyRecord {
	return domain.PropertyRecord{ID: id, Kind: domain.KindResidential, Purpose: domain.PurposeBuy, Price: 100}
}

func TestBeginLoadSetsLoadingSynchronously(t *testing.T) {
	store := NewInMemoryResultStore()

	store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())

	snapshot := store.Snapshot(domain.SlotSearch)
	assert.True(t, snapshot.Loading)
	assert.Empty(t, snapshot.Records)
}

func TestCommitReplacesRecordsAndClearsLoading(t *testing.T) {
	store := NewInMemoryResultStore()

	gen := store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	ok := store.Commit(domain.SlotSearch, gen, []domain.PropertyRecord{record("a"), record("b")})

	require.True(t, ok)
	snapshot := store.Snapshot(domain.SlotSearch)
	assert.False(t, snapshot.Loading)
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, "a", snapshot.Records[0].ID)
}

func TestStaleCommitIsRejected(t *testing.T) {
	store := NewInMemoryResultStore()

	genA := store.BeginLoad(domain.SlotSearch, domain.FilterState{City: "Pune"})
	genB := store.BeginLoad(domain.SlotSearch, domain.FilterState{City: "Delhi"})

	// Новый запрос завершается раньше старого.
	require.True(t, store.Commit(domain.SlotSearch, genB, []domain.PropertyRecord{record("delhi")}))

	// Медленный старый ответ не должен перетереть новый результат.
	assert.False(t, store.Commit(domain.SlotSearch, genA, []domain.PropertyRecord{record("pune")}))

	snapshot := store.Snapshot(domain.SlotSearch)
	assert.False(t, snapshot.Loading)
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, "delhi", snapshot.Records[0].ID)
}

func TestFailKeepsPreviousRecords(t *testing.T) {
	store := NewInMemoryResultStore()

	gen := store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	require.True(t, store.Commit(domain.SlotSearch, gen, []domain.PropertyRecord{record("a"), record("b")}))

	gen = store.BeginLoad(domain.SlotSearch, domain.FilterState{City: "Nowhere"})
	store.Fail(domain.SlotSearch, gen)

	snapshot := store.Snapshot(domain.SlotSearch)
	assert.False(t, snapshot.Loading, "failed load must clear loading")
	require.Len(t, snapshot.Records, 2, "failed load must keep stale records")
	assert.Equal(t, "a", snapshot.Records[0].ID)
}

func TestStaleFailDoesNotClearLoadingOfNewerRequest(t *testing.T) {
	store := NewInMemoryResultStore()

	genA := store.BeginLoad(domain.SlotSearch, domain.FilterState{City: "Pune"})
	store.BeginLoad(domain.SlotSearch, domain.FilterState{City: "Delhi"})

	store.Fail(domain.SlotSearch, genA)

	// Более новый запрос все еще в полете - loading остается.
	assert.True(t, store.Snapshot(domain.SlotSearch).Loading)
}

func TestSlotsAreIndependent(t *testing.T) {
	store := NewInMemoryResultStore()

	gen := store.BeginLoad(domain.SlotCommercial, domain.FilterState{})
	require.True(t, store.Commit(domain.SlotCommercial, gen, []domain.PropertyRecord{record("office")}))

	gen = store.BeginLoad(domain.SlotPlots, domain.FilterState{})
	store.Fail(domain.SlotPlots, gen)

	assert.Len(t, store.Snapshot(domain.SlotCommercial).Records, 1)
	assert.Empty(t, store.Snapshot(domain.SlotPlots).Records)
	assert.Empty(t, store.Snapshot(domain.SlotSearch).Records)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	store := NewInMemoryResultStore()

	gen := store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	require.True(t, store.Commit(domain.SlotSearch, gen, []domain.PropertyRecord{record("a")}))

	snapshot := store.Snapshot(domain.SlotSearch)
	snapshot.Records[0].ID = "mutated"

	assert.Equal(t, "a", store.Snapshot(domain.SlotSearch).Records[0].ID)
}

func TestActiveFiltersFollowSearchSlot(t *testing.T) {
	store := NewInMemoryResultStore()
	assert.Equal(t, domain.DefaultFilters(), store.ActiveFilters())

	filters := domain.FilterState{City: "Pune", Purpose: domain.PurposeRent}
	store.BeginLoad(domain.SlotSearch, filters)
	assert.Equal(t, filters, store.ActiveFilters())

	// Загрузки других ячеек активные фильтры не трогают.
	store.BeginLoad(domain.SlotFeatured, domain.FilterState{})
	assert.Equal(t, filters, store.ActiveFilters())
}

func TestSubscribersAreNotifiedSynchronouslyOnCommit(t *testing.T) {
	store := NewInMemoryResultStore()

	var notified []domain.Slot
	unsubscribe := store.Subscribe(func(slot domain.Slot) {
		notified = append(notified, slot)
	})

	gen := store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	store.Commit(domain.SlotSearch, gen, []domain.PropertyRecord{record("a")})

	require.GreaterOrEqual(t, len(notified), 2)
	assert.Equal(t, domain.SlotSearch, notified[len(notified)-1])

	unsubscribe()
	gen = store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	store.Commit(domain.SlotSearch, gen, nil)
	assert.Len(t, notified, 2, "unsubscribed listener must not be called")
}

func TestListenerCanReadSnapshotWithoutDeadlock(t *testing.T) {
	store := NewInMemoryResultStore()

	var seenLoading bool
	store.Subscribe(func(slot domain.Slot) {
		seenLoading = store.Snapshot(slot).Loading
	})

	store.BeginLoad(domain.SlotSearch, domain.DefaultFilters())
	assert.True(t, seenLoading)
}
