package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/metrics"
	"github.com/mmcdole/easel/internal/selection"
)

// DefaultPageSize is the number of artworks shown per page
const DefaultPageSize = 12

// CatalogService fetches catalog pages and runs bulk range selections.
// It holds no view state; callers own the selection set and the displayed page.
type CatalogService struct {
	repo     domain.CatalogRepository
	logger   *slog.Logger
	metrics  *metrics.CatalogMetrics
	pageSize int
	maxBulk  int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, logger *slog.Logger, m *metrics.CatalogMetrics, pageSize, maxBulk int) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxBulk < 0 {
		maxBulk = 0
	}
	return &CatalogService{
		repo:     repo,
		logger:   logger,
		metrics:  m,
		pageSize: pageSize,
		maxBulk:  maxBulk,
	}
}

// PageSize returns the fixed page size
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// MaxBulk returns the upper clamp for bulk counts
func (s *CatalogService) MaxBulk() int {
	return s.maxBulk
}

// FetchPage retrieves one page. A single attempt; on failure the caller keeps its prior state.
func (s *CatalogService) FetchPage(ctx context.Context, page int) (domain.Page, error) {
	if page < 1 {
		return domain.Page{}, domain.ErrInvalidPage
	}

	result, err := s.repo.GetArtworks(ctx, page, s.pageSize)
	if err != nil {
		s.logger.Error("failed to fetch page", "page", page, "error", err)
		return domain.Page{}, err
	}

	s.logger.Info("loaded page", "page", page, "count", len(result.Artworks), "total", result.Total)
	return result, nil
}

// PageForOffset converts a zero-based row offset into a 1-based page number
func PageForOffset(offset, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return offset/pageSize + 1
}

// ClampBulkCount limits a requested bulk count to [0, MaxBulk]
func (s *CatalogService) ClampBulkCount(n int) int {
	return max(0, min(n, s.maxBulk))
}

// BulkRequest describes one bulk range selection
type BulkRequest struct {
	Selection *selection.Set   // Current global selection; never mutated
	Current   []domain.Artwork // Artworks on screen, cleared before selecting
	StartPage int
	Count     int
}

// BulkResult is the outcome of a bulk range selection.
// Err is set when a page fetch failed; Selection still holds everything taken before it.
type BulkResult struct {
	Selection    *selection.Set
	Requested    int // Count after clamping
	Selected     int
	PagesFetched int
	Err          error
}

// BulkSelect selects the first Count artworks paging forward from StartPage.
// Pages are fetched strictly one after another. A failed fetch stops the run and the
// partial selection is kept; an empty page also stops it.
func (s *CatalogService) BulkSelect(ctx context.Context, req BulkRequest) BulkResult {
	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	set := selection.NewSet()
	if req.Selection != nil {
		set = req.Selection.Clone()
	}
	set.ClearPage(req.Current)

	remaining := s.ClampBulkCount(req.Count)
	result := BulkResult{Selection: set, Requested: remaining}
	if remaining == 0 {
		logger.Info("bulk select cleared current page", "cleared", len(req.Current))
		return result
	}

	page := max(req.StartPage, 1)
	logger.Info("bulk select started", "start_page", page, "count", remaining)

	for remaining > 0 {
		fetched, err := s.repo.GetArtworks(ctx, page, s.pageSize)
		if err != nil {
			logger.Error("bulk select stopped on fetch error",
				"page", page, "selected", result.Selected, "remaining", remaining, "error", err)
			result.Err = err
			break
		}
		result.PagesFetched++

		take := min(remaining, len(fetched.Artworks))
		if take == 0 {
			logger.Warn("bulk select reached an empty page", "page", page, "remaining", remaining)
			break
		}
		for _, a := range fetched.Artworks[:take] {
			set.Add(a)
		}
		result.Selected += take
		remaining -= take
		page++
	}

	s.metrics.ObserveBulkRun(result.Err != nil)
	logger.Info("bulk select finished",
		"selected", result.Selected, "pages", result.PagesFetched, "total_selected", set.Len())
	return result
}
