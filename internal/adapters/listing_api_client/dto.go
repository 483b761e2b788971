package listing_api_client

// DTO ответа бэкенда объявлений. Структура должна совпадать с тем,
// что отдают коллекции /api/properties/all, /api/commercial/all
// и /api/plots/all.
type propertyResponse struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Purpose     string   `json:"purpose"`
	Images      []string `json:"images"`

	Address  addressResponse  `json:"address"`
	Features featuresResponse `json:"features"`
	Agent    agentResponse    `json:"agent"`

	Views int64 `json:"views"`
}

type addressResponse struct {
	City string `json:"city"`
	Area string `json:"area"`
}

// featuresResponse - "мешок" характеристик. На бэкенде все три категории
// держат характеристики в одном свободном объекте, поэтому все поля
// опциональны; в домен уезжает только набор, соответствующий категории.
type featuresResponse struct {
	// residential
	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
	AreaSize  *float64 `json:"areaSize,omitempty"`

	// commercial
	CarpetArea  *float64 `json:"carpetArea,omitempty"`
	Parking     *bool    `json:"parking,omitempty"`
	Maintenance *int64   `json:"maintenance,omitempty"`

	// plots
	PlotArea     *float64 `json:"plotArea,omitempty"`
	BoundaryWall *bool    `json:"boundaryWall,omitempty"`
	CornerPlot   *bool    `json:"cornerPlot,omitempty"`
}

type agentResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}
