package listing_api_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyCollection = `[]`

const residentialCollection = `[
	{
		"_id": "prop-1",
		"title": "Modern Apartment",
		"description": "Bright two bedroom flat",
		"price": 45000000,
		"purpose": "Sale",
		"images": ["https://cdn.example.com/1.jpg"],
		"address": {"city": "Delhi", "area": "South Extension"},
		"features": {"bedrooms": 2, "bathrooms": 2, "areaSize": 1400},
		"agent": {"name": "R. Mehta", "contact": "+91-000"},
		"views": 42
	},
	{
		"_id": "prop-2",
		"title": "Cozy Rental Flat",
		"price": 45000,
		"purpose": "Rent",
		"images": [],
		"address": {"city": "Mumbai", "area": "Andheri"},
		"features": {"bedrooms": 1, "bathrooms": 1, "areaSize": 600}
	}
]`

const commercialCollection = `[
	{
		"_id": "office-1",
		"title": "Office Space",
		"price": 90000000,
		"purpose": "Sale",
		"address": {"city": "Pune", "area": "Hinjewadi"},
		"features": {"carpetArea": 3200, "parking": true, "maintenance": 15000}
	}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ListingAPIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewListingAPIClient(server.URL, 5*time.Second), server
}

func TestRoutesCategoriesToCollections(t *testing.T) {
	cases := []struct {
		category domain.Category
		wantPath string
	}{
		{domain.CategoryCommercial, "/api/commercial/all"},
		{domain.CategoryPlots, "/api/plots/all"},
		{domain.CategoryResidential, "/api/properties/all"},
		{"", "/api/properties/all"},
		// Неизвестная категория не роняет пайплайн, а идет в default.
		{"Penthouse", "/api/properties/all"},
	}

	for _, tc := range cases {
		var gotPath string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(emptyCollection))
		})

		_, err := client.FetchListings(context.Background(), tc.category, domain.FilterState{})
		require.NoError(t, err)
		assert.Equal(t, tc.wantPath, gotPath, "category %q", tc.category)
	}
}

func TestOmitsUnsetQueryParams(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(emptyCollection))
	})

	_, err := client.FetchListings(context.Background(), "", domain.FilterState{Purpose: domain.PurposeBuy})
	require.NoError(t, err)

	assert.Equal(t, "Sale", gotQuery.Get("purpose"))
	assert.NotContains(t, gotQuery, "city")
	assert.NotContains(t, gotQuery, "minPrice")
	assert.NotContains(t, gotQuery, "maxPrice")
}

func TestSendsFiltersOnTheWire(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(emptyCollection))
	})

	filters := domain.FilterState{
		City:     "Pune",
		Purpose:  domain.PurposeRent,
		MinPrice: 1000000,
		MaxPrice: 5000000,
	}
	_, err := client.FetchListings(context.Background(), domain.CategoryResidential, filters)
	require.NoError(t, err)

	assert.Equal(t, "Pune", gotQuery.Get("city"))
	assert.Equal(t, "Rent", gotQuery.Get("purpose"))
	assert.Equal(t, "1000000", gotQuery.Get("minPrice"))
	assert.Equal(t, "5000000", gotQuery.Get("maxPrice"))
}

func TestMapsResidentialPayloadIntoDomain(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(residentialCollection))
	})

	records, err := client.FetchListings(context.Background(), domain.CategoryResidential, domain.FilterState{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "prop-1", first.ID)
	assert.Equal(t, domain.KindResidential, first.Kind)
	assert.Equal(t, domain.PurposeBuy, first.Purpose, `wire "Sale" maps to domain "Buy"`)
	assert.Equal(t, int64(45000000), first.Price)
	assert.Equal(t, "Delhi", first.Address.City)
	assert.Equal(t, "R. Mehta", first.Agent.Name)
	assert.Equal(t, int64(42), first.Views)
	require.NotNil(t, first.Residential)
	assert.Equal(t, 2, first.Residential.Bedrooms)
	assert.Nil(t, first.Commercial)
	assert.Nil(t, first.Plot)

	second := records[1]
	assert.Equal(t, domain.PurposeRent, second.Purpose)
	assert.Empty(t, second.Images)
	assert.Empty(t, second.Agent.Name, "missing agent block must not break mapping")
}

func TestMapsCommercialFeatureBag(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(commercialCollection))
	})

	records, err := client.FetchListings(context.Background(), domain.CategoryCommercial, domain.FilterState{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, domain.KindCommercial, record.Kind)
	require.NotNil(t, record.Commercial)
	assert.Equal(t, float64(3200), record.Commercial.CarpetArea)
	assert.True(t, record.Commercial.Parking)
	assert.Equal(t, int64(15000), record.Commercial.Maintenance)
	assert.Nil(t, record.Residential)
}

func TestNon200ResponseIsAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	})

	_, err := client.FetchListings(context.Background(), domain.CategoryResidential, domain.FilterState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}

func TestMalformedPayloadIsAnError(t *testing.T) {
	payloads := []string{
		`{"not": "an array"}`,
		`not json at all`,
		`[{"title": "missing id and price", "purpose": "Sale"}]`,
		`[{"_id": "x", "title": "bad purpose", "price": 100, "purpose": "Lease"}]`,
	}

	for _, payload := range payloads {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})

		_, err := client.FetchListings(context.Background(), domain.CategoryResidential, domain.FilterState{})
		assert.Error(t, err, "payload %q must be rejected", payload)
	}
}

func TestTraceIDIsPropagated(t *testing.T) {
	var gotTraceID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get("X-Trace-ID")
		w.Write([]byte(emptyCollection))
	})

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	_, err := client.FetchListings(ctx, domain.CategoryResidential, domain.FilterState{})
	require.NoError(t, err)

	assert.Equal(t, "trace-123", gotTraceID)
}
