package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/easel/internal/config"
	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Client implements domain.CatalogRepository against the artworks REST endpoint
type Client struct {
	baseURL    string
	fields     []string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.CatalogMetrics
}

// NewClient creates a new catalog API client
func NewClient(cfg config.CatalogConfig, logger *slog.Logger, m *metrics.CatalogMetrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		fields:    cfg.Fields,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// GetArtworks fetches one page. Exactly one request is made; failures are returned, not retried.
func (c *Client) GetArtworks(ctx context.Context, page, limit int) (domain.Page, error) {
	if page < 1 {
		return domain.Page{}, domain.ErrInvalidPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if len(c.fields) > 0 {
		query.Set("fields", strings.Join(c.fields, ","))
	}

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return domain.Page{}, err
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{
		Number:   page,
		Limit:    limit,
		Artworks: MapArtworks(resp.Data),
		Total:    resp.Pagination.Total,
	}, nil
}

// doRequest performs a GET against the base URL
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	reqURL := c.baseURL
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}

	c.logger.Debug("catalog request", "url", reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(metrics.OutcomeOffline, time.Since(start))
		c.logger.Error("catalog request failed", "error", err)
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(metrics.OutcomeOffline, time.Since(start))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.ObserveRequest(metrics.OutcomeStatus, time.Since(start))
		c.logger.Error("catalog request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	c.metrics.ObserveRequest(metrics.OutcomeOK, time.Since(start))
	return body, nil
}

// parseResponse decodes the JSON envelope
func (c *Client) parseResponse(body []byte) (*APIResponse, error) {
	var resp APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}
