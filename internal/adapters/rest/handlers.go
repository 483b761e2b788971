package rest

import (
	"net/http"
	"strconv"

	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
	"listing-query-service/internal/core/port/usecases_port"
)

// ListingsHandler - обработчики читающей поверхности сервиса.
type ListingsHandler struct {
	loadListingsUC usecases_port.LoadListingsUseCasePort
	loadFeaturedUC usecases_port.LoadFeaturedUseCasePort
	loadSnapshotUC usecases_port.LoadCategorySnapshotUseCasePort
	getFiltersUC   usecases_port.GetActiveFiltersUseCasePort
}

// NewListingsHandler - конструктор.
func NewListingsHandler(
	loadListingsUC usecases_port.LoadListingsUseCasePort,
	loadFeaturedUC usecases_port.LoadFeaturedUseCasePort,
	loadSnapshotUC usecases_port.LoadCategorySnapshotUseCasePort,
	getFiltersUC usecases_port.GetActiveFiltersUseCasePort,
) *ListingsHandler {
	return &ListingsHandler{
		loadListingsUC: loadListingsUC,
		loadFeaturedUC: loadFeaturedUC,
		loadSnapshotUC: loadSnapshotUC,
		getFiltersUC:   getFiltersUC,
	}
}

// SearchListings обрабатывает GET /api/v1/listings.
// Query-строка - это deep-link: из нее восстанавливается FilterState,
// запрос обновляет активные фильтры и запускает загрузку.
func (h *ListingsHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchListings"})

	query := r.URL.Query()

	// Вывернутый диапазон цен не фатален (Normalize его выбросит),
	// но клиенту стоит знать, что он прислал ерунду.
	minRaw, errMin := strconv.ParseInt(query.Get(domain.FilterKeyMinPrice), 10, 64)
	maxRaw, errMax := strconv.ParseInt(query.Get(domain.FilterKeyMaxPrice), 10, 64)
	if errMin == nil && errMax == nil && minRaw > maxRaw {
		logger.Warn("Inverted price range in request, dropping both bounds", port.Fields{
			"min_price": minRaw,
			"max_price": maxRaw,
		})
	}

	filters := domain.ParseFilterQuery(query)
	handlerLogger := logger.WithFields(port.Fields{
		"city":     filters.City,
		"purpose":  filters.Purpose,
		"category": filters.Category,
	})
	handlerLogger.Info("Processing search request", nil)

	resultSet := h.loadListingsUC.Execute(r.Context(), filters)

	handlerLogger.Info("Search request served", port.Fields{
		"records_found": len(resultSet.Records),
	})
	RespondWithJSON(w, http.StatusOK, toResultSetResponse(resultSet))
}

// GetFeatured обрабатывает GET /api/v1/listings/featured
func (h *ListingsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeatured"})
	logger.Info("Processing request for featured listings", nil)

	resultSet := h.loadFeaturedUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, toResultSetResponse(resultSet))
}

// GetCommercial обрабатывает GET /api/v1/listings/commercial
func (h *ListingsHandler) GetCommercial(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCommercial"})
	logger.Info("Processing request for commercial snapshot", nil)

	commercial, _ := h.loadSnapshotUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, toResultSetResponse(commercial))
}

// GetPlots обрабатывает GET /api/v1/listings/plots
func (h *ListingsHandler) GetPlots(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPlots"})
	logger.Info("Processing request for plots snapshot", nil)

	_, plots := h.loadSnapshotUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, toResultSetResponse(plots))
}

// GetActiveFilters обрабатывает GET /api/v1/filters
func (h *ListingsHandler) GetActiveFilters(w http.ResponseWriter, r *http.Request) {
	filters := h.getFiltersUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, toFilterStateResponse(filters))
}
