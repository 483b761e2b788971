package domain

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Ключи query-параметров. Они же используются в deep-link контракте:
// состояние фильтров должно ходить через адресную строку туда и обратно
// с теми же именами.
const (
	FilterKeyCity     = "city"
	FilterKeyPurpose  = "purpose"
	FilterKeyCategory = "category"
	FilterKeyMinPrice = "minPrice"
	FilterKeyMaxPrice = "maxPrice"
)

// FilterState - каноническое представление поискового запроса пользователя.
// Структура сравнима оператором == и используется для детекции изменений.
// Нулевые значения (пустая строка, 0) означают "фильтр не задан":
// отсутствующий фильтр совпадает со всем, а не ни с чем.
type FilterState struct {
	City     string
	Purpose  Purpose
	Category Category
	MinPrice int64
	MaxPrice int64
}

// DefaultFilters - состояние на старте сессии: purpose=Buy, остальное пусто.
func DefaultFilters() FilterState {
	return FilterState{Purpose: PurposeBuy}
}

// Normalize приводит произвольное состояние к каноническому виду:
// обрезает пробелы, исправляет регистр enum-значений, выбрасывает
// некорректные цены. Идемпотентна: Normalize(Normalize(f)) == Normalize(f).
func (f FilterState) Normalize() FilterState {
	out := FilterState{}

	out.City = strings.TrimSpace(f.City)
	out.Purpose = normalizePurpose(string(f.Purpose))
	out.Category = normalizeCategory(string(f.Category))

	if f.MinPrice > 0 {
		out.MinPrice = f.MinPrice
	}
	if f.MaxPrice > 0 {
		out.MaxPrice = f.MaxPrice
	}

	// Вывернутый диапазон не чиним, а выбрасываем целиком:
	// лучше не фильтровать вовсе, чем фильтровать по границе,
	// которую пользователь не задавал.
	if out.MinPrice > 0 && out.MaxPrice > 0 && out.MinPrice > out.MaxPrice {
		out.MinPrice = 0
		out.MaxPrice = 0
	}

	return out
}

// QueryParams возвращает состояние в виде query-параметров.
// Незаданные поля не попадают в результат вообще (не отправляются
// пустыми строками). Порядок ключей при кодировании детерминирован:
// url.Values.Encode сортирует ключи.
func (f FilterState) QueryParams() url.Values {
	params := url.Values{}

	if f.City != "" {
		params.Set(FilterKeyCity, f.City)
	}
	if f.Purpose != "" {
		params.Set(FilterKeyPurpose, string(f.Purpose))
	}
	if f.Category != "" {
		params.Set(FilterKeyCategory, string(f.Category))
	}
	if f.MinPrice > 0 {
		params.Set(FilterKeyMinPrice, strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice > 0 {
		params.Set(FilterKeyMaxPrice, strconv.FormatInt(f.MaxPrice, 10))
	}

	return params
}

// ParseFilterQuery восстанавливает FilterState из query-параметров
// (deep-link, закладка, кнопка "назад"). Числовые строки приводятся
// к числам, мусор молча выбрасывается. Результат уже нормализован,
// поэтому ParseFilterQuery(f.QueryParams()) == f для нормализованного f.
func ParseFilterQuery(params url.Values) FilterState {
	f := FilterState{
		City:     params.Get(FilterKeyCity),
		Purpose:  Purpose(params.Get(FilterKeyPurpose)),
		Category: Category(params.Get(FilterKeyCategory)),
		MinPrice: parsePrice(params.Get(FilterKeyMinPrice)),
		MaxPrice: parsePrice(params.Get(FilterKeyMaxPrice)),
	}
	return f.Normalize()
}

func parsePrice(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

func normalizePurpose(raw string) Purpose {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rent":
		return PurposeRent
	case "buy":
		return PurposeBuy
	default:
		// Назначение всегда задано; по умолчанию - покупка.
		return PurposeBuy
	}
}

func normalizeCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "residential":
		return CategoryResidential
	case "commercial":
		return CategoryCommercial
	case "plots":
		return CategoryPlots
	default:
		// Неизвестная категория - это не ошибка: оставляем незаданной,
		// маршрутизация провалится в endpoint по умолчанию.
		return ""
	}
}

// MatchRecords - клиентская фильтрация записей, fallback на случай,
// когда бэкенд вернул больше, чем просили. Семантика:
//   - город: регистронезависимое вхождение подстроки;
//   - цена: границы включительно;
//   - категория: по Kind записи.
func MatchRecords(records []PropertyRecord, f FilterState) []PropertyRecord {
	f = f.Normalize()

	folder := cases.Fold()
	city := folder.String(f.City)

	matched := make([]PropertyRecord, 0, len(records))
	for _, record := range records {
		if f.Purpose != "" && record.Purpose != f.Purpose {
			continue
		}
		if f.Category != "" && record.Kind != KindForCategory(f.Category) {
			continue
		}
		if f.MinPrice > 0 && record.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && record.Price > f.MaxPrice {
			continue
		}
		if city != "" && !strings.Contains(folder.String(record.Address.City), city) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}
