package listing_api_client

import (
	"listing-query-service/internal/constants"
	"listing-query-service/internal/core/domain"
)

// purposeToWire переводит доменное назначение в значение бэкенда:
// "Buy" в домене - это "Sale" на проводе. Маппинг обязан быть
// согласован в обе стороны.
func purposeToWire(purpose domain.Purpose) string {
	switch purpose {
	case domain.PurposeRent:
		return constants.WirePurposeRent
	default:
		return constants.WirePurposeSale
	}
}

func purposeFromWire(wire string) domain.Purpose {
	if wire == constants.WirePurposeRent {
		return domain.PurposeRent
	}
	return domain.PurposeBuy
}

// toDomainRecord маппит DTO в доменную запись. Вариант (Kind) берется
// из категории, которую мы запрашивали, а не из payload: коллекции
// на бэкенде и так разделены по категориям.
func toDomainRecord(dto propertyResponse, kind domain.Kind) domain.PropertyRecord {
	record := domain.PropertyRecord{
		ID:          dto.ID,
		Kind:        kind,
		Title:       dto.Title,
		Description: dto.Description,
		Price:       dto.Price,
		Purpose:     purposeFromWire(dto.Purpose),
		Address: domain.Address{
			City: dto.Address.City,
			Area: dto.Address.Area,
		},
		Images: dto.Images,
		Agent: domain.AgentRef{
			Name:    dto.Agent.Name,
			Contact: dto.Agent.Contact,
		},
		Views: dto.Views,
	}

	// Из свободного "мешка" характеристик забираем только набор
	// своей категории; доступ защищен от отсутствующих полей.
	switch kind {
	case domain.KindCommercial:
		record.Commercial = &domain.CommercialFeatures{
			CarpetArea:  derefFloat(dto.Features.CarpetArea),
			Parking:     derefBool(dto.Features.Parking),
			Maintenance: derefInt64(dto.Features.Maintenance),
		}
	case domain.KindPlot:
		record.Plot = &domain.PlotFeatures{
			PlotArea:     derefFloat(dto.Features.PlotArea),
			BoundaryWall: derefBool(dto.Features.BoundaryWall),
			CornerPlot:   derefBool(dto.Features.CornerPlot),
		}
	default:
		record.Residential = &domain.ResidentialFeatures{
			Bedrooms:  derefInt(dto.Features.Bedrooms),
			Bathrooms: derefInt(dto.Features.Bathrooms),
			AreaSize:  derefFloat(dto.Features.AreaSize),
		}
	}

	return record
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefBool(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
