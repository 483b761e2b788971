package constants

// Пути коллекций на бэкенде объявлений. Три фиксированные категории,
// всё неизвестное проваливается в residential.
const (
	ResidentialListingsPath = "/api/properties/all"
	CommercialListingsPath  = "/api/commercial/all"
	PlotListingsPath        = "/api/plots/all"
)

// Wire-значения назначения на бэкенде. В домене и deep-link всегда
// "Buy"/"Rent", бэкенд хранит "Sale"/"Rent".
const (
	WirePurposeSale = "Sale"
	WirePurposeRent = "Rent"
)

// FeaturedLimit - сколько записей показываем в подборке на главной.
const FeaturedLimit = 3
