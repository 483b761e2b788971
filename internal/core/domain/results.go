package domain

// Slot - именованная ячейка кэша результатов. У каждой страницы-потребителя
// своя ячейка, между собой они никак не упорядочены и не связаны.
type Slot string

const (
	// SlotSearch - результаты поиска по текущим фильтрам.
	SlotSearch Slot = "search"
	// SlotFeatured - подборка для главной страницы.
	SlotFeatured Slot = "featured"
	// SlotCommercial и SlotPlots - снапшоты категорийных страниц.
	SlotCommercial Slot = "commercial"
	SlotPlots      Slot = "plots"
)

// ResultSet - снапшот одной ячейки: записи, флаг загрузки и фильтры,
// по которым эти записи были получены. Потребители получают копию
// и не могут мутировать кэш.
type ResultSet struct {
	Records []PropertyRecord
	Loading bool
	Filters FilterState
}
