// Package testutil provides a fake artworks catalog server for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/mmcdole/easel/internal/catalog"
	"github.com/mmcdole/easel/internal/domain"
)

// FakeCatalog serves a fixed list of artworks with page/limit paging
type FakeCatalog struct {
	server *httptest.Server

	mu        sync.Mutex
	artworks  []domain.Artwork
	failPages map[int]int // page -> status code to answer with
	requests  []request
}

type request struct {
	Page   int
	Limit  int
	Fields string
}

// NewFakeCatalog starts a server holding n artworks with IDs 1..n
func NewFakeCatalog(n int) *FakeCatalog {
	f := &FakeCatalog{
		artworks:  GenerateArtworks(n),
		failPages: make(map[int]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// GenerateArtworks builds n artworks with IDs 1..n
func GenerateArtworks(n int) []domain.Artwork {
	out := make([]domain.Artwork, n)
	for i := range out {
		id := i + 1
		year := 1800 + id
		out[i] = domain.Artwork{
			ID:            id,
			Title:         fmt.Sprintf("Artwork %d", id),
			PlaceOfOrigin: "France",
			ArtistDisplay: fmt.Sprintf("Artist %d", id),
			DateStart:     &year,
			DateEnd:       &year,
		}
	}
	return out
}

// URL returns the base URL of the artworks endpoint
func (f *FakeCatalog) URL() string {
	return f.server.URL + "/api/v1/artworks"
}

// Close shuts down the server
func (f *FakeCatalog) Close() {
	f.server.Close()
}

// FailPage makes requests for the page answer with status
func (f *FakeCatalog) FailPage(page, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPages[page] = status
}

// RequestedPages returns the page numbers requested, in arrival order
func (f *FakeCatalog) RequestedPages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	pages := make([]int, len(f.requests))
	for i, r := range f.requests {
		pages[i] = r.Page
	}
	return pages
}

// LastFields returns the "fields" parameter of the most recent request
func (f *FakeCatalog) LastFields() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return ""
	}
	return f.requests[len(f.requests)-1].Fields
}

func (f *FakeCatalog) handle(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	f.mu.Lock()
	f.requests = append(f.requests, request{Page: page, Limit: limit, Fields: r.URL.Query().Get("fields")})
	status, fail := f.failPages[page]
	total := len(f.artworks)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	slice := f.artworks[start:end]
	f.mu.Unlock()

	if fail {
		w.WriteHeader(status)
		w.Write([]byte(`{"status":` + strconv.Itoa(status) + `}`))
		return
	}

	resp := catalog.APIResponse{
		Pagination: catalog.Pagination{
			Total:       total,
			Limit:       limit,
			Offset:      start,
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
		},
		Data: make([]catalog.ArtworkDTO, len(slice)),
	}
	for i, a := range slice {
		title := a.Title
		origin := a.PlaceOfOrigin
		artist := a.ArtistDisplay
		resp.Data[i] = catalog.ArtworkDTO{
			ID:            a.ID,
			Title:         &title,
			PlaceOfOrigin: &origin,
			ArtistDisplay: &artist,
			DateStart:     a.DateStart,
			DateEnd:       a.DateEnd,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
