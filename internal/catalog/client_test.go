package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/easel/internal/config"
	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/log"
	"github.com/mmcdole/easel/internal/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig().Catalog
	cfg.BaseURL = srv.URL + "/api/v1/artworks"
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg, log.NullLogger(), metrics.NewCatalogMetrics(prometheus.NewRegistry())), srv
}

func TestClient_GetArtworks(t *testing.T) {
	var gotQuery map[string]string
	var gotHeaders http.Header

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/artworks", r.URL.Path)
		gotQuery = map[string]string{
			"page":   r.URL.Query().Get("page"),
			"limit":  r.URL.Query().Get("limit"),
			"fields": r.URL.Query().Get("fields"),
		}
		gotHeaders = r.Header.Clone()
		w.Write([]byte(`{
			"pagination": {"total": 129884, "limit": 12, "offset": 12, "total_pages": 10824, "current_page": 2},
			"data": [
				{"id": 27992, "title": "A Sunday on La Grande Jatte", "place_of_origin": "France",
				 "artist_display": "Georges Seurat", "inscriptions": null, "date_start": 1884, "date_end": 1886},
				{"id": 4, "title": null, "place_of_origin": null, "artist_display": "Unknown",
				 "inscriptions": "signed", "date_start": null, "date_end": null}
			]
		}`))
	})

	page, err := client.GetArtworks(context.Background(), 2, 12)
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "12", gotQuery["limit"])
	assert.Contains(t, gotQuery["fields"], "artist_display")
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, "easel/1.0", gotHeaders.Get("AIC-User-Agent"))

	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 12, page.Limit)
	assert.Equal(t, 129884, page.Total)
	require.Len(t, page.Artworks, 2)

	first := page.Artworks[0]
	assert.Equal(t, 27992, first.ID)
	assert.Equal(t, "Georges Seurat", first.ArtistDisplay)
	assert.Equal(t, "", first.Inscriptions)
	require.NotNil(t, first.DateStart)
	assert.Equal(t, 1884, *first.DateStart)

	second := page.Artworks[1]
	assert.Equal(t, "", second.Title)
	assert.Equal(t, "Untitled", second.DisplayTitle())
	assert.Nil(t, second.DateEnd)
}

func TestClient_GetArtworks_BadStatus(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetArtworks(context.Background(), 1, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Equal(t, 1, calls, "a failed fetch is never retried")
}

func TestClient_GetArtworks_Offline(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.GetArtworks(context.Background(), 1, 12)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestClient_GetArtworks_BadJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [`))
	})

	_, err := client.GetArtworks(context.Background(), 1, 12)
	assert.Error(t, err)
}

func TestClient_GetArtworks_InvalidPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.GetArtworks(context.Background(), 0, 12)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestClient_OmitsEmptyFields(t *testing.T) {
	var hasFields bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasFields = r.URL.Query().Has("fields")
		w.Write([]byte(`{"pagination": {"total": 0}, "data": []}`))
	}))
	defer srv.Close()

	client := NewClient(config.CatalogConfig{BaseURL: srv.URL}, nil, nil)
	page, err := client.GetArtworks(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.False(t, hasFields)
	assert.Empty(t, page.Artworks)
}
