package listing_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"listing-query-service/internal/constants"
	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/contracts"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
)

// ListingAPIClient - клиент бэкенда объявлений.
type ListingAPIClient struct {
	baseURL    string // Например, "http://listing-backend:8080"
	httpClient *http.Client
}

// NewListingAPIClient - конструктор. Таймаут обязателен: зависший запрос
// должен разрешиться как неудачная загрузка, а не держать loading вечно.
func NewListingAPIClient(baseURL string, timeout time.Duration) *ListingAPIClient {
	return &ListingAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// endpointFor - статическая таблица "категория -> коллекция".
// Неизвестная или пустая категория проваливается в residential,
// это штатный режим, а не ошибка.
func endpointFor(category domain.Category) string {
	switch category {
	case domain.CategoryCommercial:
		return constants.CommercialListingsPath
	case domain.CategoryPlots:
		return constants.PlotListingsPath
	default:
		return constants.ResidentialListingsPath
	}
}

// buildRequestURL собирает URL запроса. В query попадают только заданные
// фильтры; категория в query не ходит - она уже выражена путем коллекции.
func (c *ListingAPIClient) buildRequestURL(category domain.Category, filters domain.FilterState) (string, error) {
	u, err := url.Parse(c.baseURL + endpointFor(category))
	if err != nil {
		return "", err
	}

	q := u.Query()
	if filters.City != "" {
		q.Set("city", filters.City)
	}
	if filters.Purpose != "" {
		q.Set("purpose", purposeToWire(filters.Purpose))
	}
	if filters.MinPrice > 0 {
		q.Set("minPrice", fmt.Sprintf("%d", filters.MinPrice))
	}
	if filters.MaxPrice > 0 {
		q.Set("maxPrice", fmt.Sprintf("%d", filters.MaxPrice))
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *ListingAPIClient) doRequest(ctx context.Context, method, requestURL string) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Пробрасываем заголовок для трассировки
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchListings реализует порт ListingBackendPort.
func (c *ListingAPIClient) FetchListings(ctx context.Context, category domain.Category, filters domain.FilterState) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "ListingAPIClient",
		"category":  category,
	})

	requestURL, err := c.buildRequestURL(category, filters)
	if err != nil {
		clientLogger.Error("Failed to build request URL", err, nil)
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	clientLogger.Debug("Sending request to listing backend", port.Fields{"url": requestURL})

	resp, err := c.doRequest(ctx, http.MethodGet, requestURL)
	if err != nil {
		clientLogger.Error("Failed to perform request to listing backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("listing backend returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from listing backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read response body", err, nil)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем payload по схеме до маппинга: кривой ответ эквивалентен
	// сетевой ошибке, потребители его не увидят.
	if err := contracts.ValidatePayload("ListingCollectionPayload", "1.0.0", body); err != nil {
		clientLogger.Error("Listing backend response failed contract validation", err, nil)
		return nil, fmt.Errorf("unexpected listing backend response shape: %w", err)
	}

	var dtos []propertyResponse
	if err := json.Unmarshal(body, &dtos); err != nil {
		clientLogger.Error("Failed to decode response from listing backend", err, nil)
		return nil, fmt.Errorf("failed to decode listing backend response: %w", err)
	}

	// Маппим DTO ответа в доменную модель: изолируем ядро
	// от деталей API бэкенда.
	kind := domain.KindForCategory(category)
	records := make([]domain.PropertyRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = toDomainRecord(dto, kind)
	}

	clientLogger.Info("Successfully fetched listings", port.Fields{"records_found": len(records)})
	return records, nil
}
