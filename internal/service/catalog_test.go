package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/easel/internal/catalog"
	"github.com/mmcdole/easel/internal/config"
	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/log"
	"github.com/mmcdole/easel/internal/selection"
	"github.com/mmcdole/easel/internal/testutil"
)

func newService(t *testing.T, artworks int) (*CatalogService, *testutil.FakeCatalog) {
	t.Helper()
	fake := testutil.NewFakeCatalog(artworks)
	t.Cleanup(fake.Close)

	cfg := config.DefaultConfig()
	cfg.Catalog.BaseURL = fake.URL()
	client := catalog.NewClient(cfg.Catalog, log.NullLogger(), nil)
	return NewCatalogService(client, log.NullLogger(), nil, cfg.Catalog.PageSize, cfg.Selection.MaxBulk), fake
}

func selectedIDs(s *selection.Set) []int {
	var out []int
	for _, a := range s.Items() {
		out = append(out, a.ID)
	}
	return out
}

func seq(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// stubRepo answers from a fixed page table and fails on chosen pages
type stubRepo struct {
	pages map[int][]domain.Artwork
	fail  map[int]error
	calls []int
}

func (r *stubRepo) GetArtworks(_ context.Context, page, limit int) (domain.Page, error) {
	r.calls = append(r.calls, page)
	if err := r.fail[page]; err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Number: page, Limit: limit, Artworks: r.pages[page], Total: 100}, nil
}

func TestFetchPage(t *testing.T) {
	svc, fake := newService(t, 30)

	page, err := svc.FetchPage(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 30, page.Total)
	assert.Equal(t, []int{25, 26, 27, 28, 29, 30}, page.IDs())
	assert.Equal(t, 3, page.TotalPages())
	assert.Equal(t, []int{3}, fake.RequestedPages())
}

func TestFetchPage_Failure(t *testing.T) {
	svc, fake := newService(t, 30)
	fake.FailPage(2, http.StatusInternalServerError)

	_, err := svc.FetchPage(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Equal(t, []int{2}, fake.RequestedPages())
}

func TestFetchPage_InvalidPage(t *testing.T) {
	svc, fake := newService(t, 30)

	_, err := svc.FetchPage(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
	assert.Empty(t, fake.RequestedPages())
}

func TestPageForOffset(t *testing.T) {
	assert.Equal(t, 1, PageForOffset(0, 12))
	assert.Equal(t, 2, PageForOffset(12, 12))
	assert.Equal(t, 5, PageForOffset(48, 12))
	assert.Equal(t, 1, PageForOffset(11, 12))
	assert.Equal(t, 2, PageForOffset(12, 0), "zero page size falls back to the default")
}

func TestBulkSelect_SpansPages(t *testing.T) {
	svc, fake := newService(t, 100)
	current, err := svc.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	res := svc.BulkSelect(context.Background(), BulkRequest{
		Selection: selection.NewSet(),
		Current:   current.Artworks,
		StartPage: 1,
		Count:     20,
	})

	require.NoError(t, res.Err)
	assert.Equal(t, 20, res.Selected)
	assert.Equal(t, 2, res.PagesFetched)
	assert.Equal(t, seq(1, 20), selectedIDs(res.Selection))
	assert.Equal(t, []int{1, 1, 2}, fake.RequestedPages())
}

func TestBulkSelect_DoesNotMutateInput(t *testing.T) {
	svc, _ := newService(t, 100)
	input := selection.NewSet()
	input.Add(domain.Artwork{ID: 500})

	res := svc.BulkSelect(context.Background(), BulkRequest{Selection: input, StartPage: 1, Count: 3})

	assert.Equal(t, []int{500}, selectedIDs(input))
	assert.Equal(t, []int{500, 1, 2, 3}, selectedIDs(res.Selection))
}

func TestBulkSelect_ZeroClearsCurrentPageOnly(t *testing.T) {
	svc, fake := newService(t, 100)
	ctx := context.Background()

	page1, err := svc.FetchPage(ctx, 1)
	require.NoError(t, err)
	page2, err := svc.FetchPage(ctx, 2)
	require.NoError(t, err)

	set := selection.NewSet()
	set.ReconcilePage(page1.Artworks, page1.Artworks[:3])
	set.ReconcilePage(page2.Artworks, page2.Artworks[:2])

	before := len(fake.RequestedPages())
	res := svc.BulkSelect(ctx, BulkRequest{Selection: set, Current: page2.Artworks, StartPage: 2, Count: 0})

	require.NoError(t, res.Err)
	assert.Equal(t, []int{1, 2, 3}, selectedIDs(res.Selection))
	assert.Len(t, fake.RequestedPages(), before, "count 0 makes no requests")
}

func TestBulkSelect_ClearsCurrentPageBeforeSelecting(t *testing.T) {
	svc, _ := newService(t, 100)
	ctx := context.Background()
	page1, err := svc.FetchPage(ctx, 1)
	require.NoError(t, err)

	set := selection.NewSet()
	set.ReconcilePage(page1.Artworks, page1.Artworks[8:])

	res := svc.BulkSelect(ctx, BulkRequest{Selection: set, Current: page1.Artworks, StartPage: 1, Count: 2})

	assert.Equal(t, []int{1, 2}, selectedIDs(res.Selection))
}

func TestBulkSelect_PartialOnFailure(t *testing.T) {
	svc, fake := newService(t, 100)
	fake.FailPage(2, http.StatusBadGateway)

	res := svc.BulkSelect(context.Background(), BulkRequest{
		Selection: selection.NewSet(),
		StartPage: 1,
		Count:     30,
	})

	require.Error(t, res.Err)
	assert.Equal(t, 12, res.Selected)
	assert.Equal(t, 1, res.PagesFetched)
	assert.Equal(t, seq(1, 12), selectedIDs(res.Selection))
	assert.Equal(t, []int{1, 2}, fake.RequestedPages(), "no fetch after the failure")
}

func TestBulkSelect_ClampsCount(t *testing.T) {
	svc, fake := newService(t, 500)

	res := svc.BulkSelect(context.Background(), BulkRequest{StartPage: 1, Count: 1000})

	require.NoError(t, res.Err)
	assert.Equal(t, 120, res.Requested)
	assert.Equal(t, 120, res.Selection.Len())
	assert.Len(t, fake.RequestedPages(), 10)
}

func TestBulkSelect_StopsAtEndOfCatalog(t *testing.T) {
	svc, fake := newService(t, 15)

	res := svc.BulkSelect(context.Background(), BulkRequest{StartPage: 1, Count: 50})

	require.NoError(t, res.Err)
	assert.Equal(t, 15, res.Selected)
	assert.Equal(t, []int{1, 2, 3}, fake.RequestedPages())
}

func TestBulkSelect_StartsFromGivenPage(t *testing.T) {
	repo := &stubRepo{
		pages: map[int][]domain.Artwork{
			3: testutil.GenerateArtworks(12)[:4],
			4: testutil.GenerateArtworks(12)[4:8],
		},
	}
	svc := NewCatalogService(repo, log.NullLogger(), nil, 4, 120)

	res := svc.BulkSelect(context.Background(), BulkRequest{StartPage: 3, Count: 6})

	require.NoError(t, res.Err)
	assert.Equal(t, []int{3, 4}, repo.calls)
	assert.Equal(t, seq(1, 6), selectedIDs(res.Selection))
}

func TestBulkSelect_TransportErrorKeepsPartial(t *testing.T) {
	repo := &stubRepo{
		pages: map[int][]domain.Artwork{1: testutil.GenerateArtworks(12)},
		fail:  map[int]error{2: domain.ErrServerOffline},
	}
	svc := NewCatalogService(repo, log.NullLogger(), nil, 12, 120)

	res := svc.BulkSelect(context.Background(), BulkRequest{StartPage: 1, Count: 20})

	assert.True(t, errors.Is(res.Err, domain.ErrServerOffline))
	assert.Equal(t, seq(1, 12), selectedIDs(res.Selection))
}
