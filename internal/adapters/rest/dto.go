package rest

import (
	"listing-query-service/internal/core/domain"
)

// DTO ответов сервиса. Ключи фильтров совпадают с query-параметрами
// deep-link контракта, чтобы ответ /filters можно было положить
// обратно в адресную строку как есть.

type filterStateResponse struct {
	City     string `json:"city,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
	Category string `json:"category,omitempty"`
	MinPrice int64  `json:"minPrice,omitempty"`
	MaxPrice int64  `json:"maxPrice,omitempty"`
}

type addressResponse struct {
	City string `json:"city"`
	Area string `json:"area"`
}

type agentResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type residentialFeaturesResponse struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSize  float64 `json:"areaSize"`
}

type commercialFeaturesResponse struct {
	CarpetArea  float64 `json:"carpetArea"`
	Parking     bool    `json:"parking"`
	Maintenance int64   `json:"maintenance"`
}

type plotFeaturesResponse struct {
	PlotArea     float64 `json:"plotArea"`
	BoundaryWall bool    `json:"boundaryWall"`
	CornerPlot   bool    `json:"cornerPlot"`
}

type propertyCardResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       int64           `json:"price"`
	Purpose     string          `json:"purpose"`
	Address     addressResponse `json:"address"`
	Images      []string        `json:"images"`
	Agent       agentResponse   `json:"agent"`
	Views       int64           `json:"views"`

	Residential *residentialFeaturesResponse `json:"residentialFeatures,omitempty"`
	Commercial  *commercialFeaturesResponse  `json:"commercialFeatures,omitempty"`
	Plot        *plotFeaturesResponse        `json:"plotFeatures,omitempty"`
}

type resultSetResponse struct {
	Data    []propertyCardResponse `json:"data"`
	Loading bool                   `json:"loading"`
	Filters filterStateResponse    `json:"filters"`
}

func toFilterStateResponse(f domain.FilterState) filterStateResponse {
	return filterStateResponse{
		City:     f.City,
		Purpose:  string(f.Purpose),
		Category: string(f.Category),
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
	}
}

func toPropertyCardResponse(record domain.PropertyRecord) propertyCardResponse {
	card := propertyCardResponse{
		ID:          record.ID,
		Kind:        string(record.Kind),
		Title:       record.Title,
		Description: record.Description,
		Price:       record.Price,
		Purpose:     string(record.Purpose),
		Address: addressResponse{
			City: record.Address.City,
			Area: record.Address.Area,
		},
		Images: record.Images,
		Agent: agentResponse{
			Name:    record.Agent.Name,
			Contact: record.Agent.Contact,
		},
		Views: record.Views,
	}

	// Пустой список изображений отдаем как [], а не null:
	// placeholder - забота фронтенда, но null ему ни к чему.
	if card.Images == nil {
		card.Images = []string{}
	}

	if record.Residential != nil {
		card.Residential = &residentialFeaturesResponse{
			Bedrooms:  record.Residential.Bedrooms,
			Bathrooms: record.Residential.Bathrooms,
			AreaSize:  record.Residential.AreaSize,
		}
	}
	if record.Commercial != nil {
		card.Commercial = &commercialFeaturesResponse{
			CarpetArea:  record.Commercial.CarpetArea,
			Parking:     record.Commercial.Parking,
			Maintenance: record.Commercial.Maintenance,
		}
	}
	if record.Plot != nil {
		card.Plot = &plotFeaturesResponse{
			PlotArea:     record.Plot.PlotArea,
			BoundaryWall: record.Plot.BoundaryWall,
			CornerPlot:   record.Plot.CornerPlot,
		}
	}

	return card
}

func toResultSetResponse(rs domain.ResultSet) resultSetResponse {
	response := resultSetResponse{
		Data:    make([]propertyCardResponse, len(rs.Records)),
		Loading: rs.Loading,
		Filters: toFilterStateResponse(rs.Filters),
	}
	for i, record := range rs.Records {
		response.Data[i] = toPropertyCardResponse(record)
	}
	return response
}
