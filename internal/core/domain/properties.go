package domain

// Purpose - назначение объявления с точки зрения пользователя.
// На уровне домена и deep-link всегда "Buy"/"Rent"; бэкенд оперирует
// значениями "Sale"/"Rent", маппинг живет в адаптере listing_api_client.
type Purpose string

const (
	PurposeBuy  Purpose = "Buy"
	PurposeRent Purpose = "Rent"
)

// Category - класс недвижимости. Каждой категории соответствует
// отдельная коллекция (и endpoint) на бэкенде.
type Category string

const (
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
	CategoryPlots       Category = "Plots"
)

// Kind - дискриминатор варианта записи. В отличие от категории фильтра,
// Kind жестко привязан к записи и определяет, какой набор характеристик
// у нее заполнен.
type Kind string

const (
	KindResidential Kind = "Residential"
	KindCommercial  Kind = "Commercial"
	KindPlot        Kind = "Plot"
)

type Address struct {
	City string
	Area string
}

// AgentRef - денормализованная ссылка на агента объявления.
// Полный профиль агента живет на бэкенде, нам хватает имени и контакта.
type AgentRef struct {
	Name    string
	Contact string
}

type ResidentialFeatures struct {
	Bedrooms  int
	Bathrooms int
	AreaSize  float64
}

type CommercialFeatures struct {
	CarpetArea  float64
	Parking     bool
	Maintenance int64
}

type PlotFeatures struct {
	PlotArea     float64
	BoundaryWall bool
	CornerPlot   bool
}

// PropertyRecord - одно объявление, независимо от категории.
// Мы только читаем и кэшируем снапшоты: создание/редактирование/удаление
// делает внешний сервис управления объявлениями.
type PropertyRecord struct {
	ID          string
	Kind        Kind
	Title       string
	Description string

	// Цена в минимальных единицах валюты.
	Price int64

	Purpose Purpose
	Address Address

	// Может быть пустым - placeholder подставляет слой представления.
	Images []string

	Agent AgentRef

	// Счетчик просмотров монотонно растет на стороне бэкенда,
	// здесь он read-only.
	Views int64

	// Заполнено ровно одно из трех, в соответствии с Kind.
	Residential *ResidentialFeatures
	Commercial  *CommercialFeatures
	Plot        *PlotFeatures
}

// KindForCategory возвращает вариант записи для категории фильтра.
// Неизвестная категория проваливается в Residential - так же,
// как и маршрутизация по endpoint'ам.
func KindForCategory(category Category) Kind {
	switch category {
	case CategoryCommercial:
		return KindCommercial
	case CategoryPlots:
		return KindPlot
	default:
		return KindResidential
	}
}
