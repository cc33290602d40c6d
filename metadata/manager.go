// Package metadata is a client for the FDRI metadata API.
//
// Manager issues paginated GETs against the API for one sensor network
// and concatenates the pages into a single response. HTTP errors
// propagate unchanged.
package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// DefaultPageSize is the number of items requested per paginated call.
const DefaultPageSize = 25

// Response is the common shape of metadata API payloads.
type Response struct {
	Meta  map[string]any   `json:"meta"`
	Items []map[string]any `json:"items"`
}

// Manager issues requests to the metadata API for one sensor network.
type Manager struct {
	host     string
	network  string
	client   *resty.Client
	pageSize int
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithPageSize overrides the per-page item count for paginated calls.
func WithPageSize(n int) ManagerOption {
	return func(m *Manager) {
		m.pageSize = n
	}
}

// WithClient substitutes the HTTP client, e.g. to set timeouts.
func WithClient(client *resty.Client) ManagerOption {
	return func(m *Manager) {
		m.client = client
	}
}

// NewManager creates a Manager for the metadata API at host, scoped to
// the given sensor network.
func NewManager(host, network string, opts ...ManagerOption) *Manager {
	m := &Manager{
		host:     host,
		network:  network,
		client:   resty.New(),
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) makeAPICall(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	out := &Response{}
	req := m.client.R().SetContext(ctx).SetResult(out)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		slog.Error("failed to fetch metadata", "network", m.network, "url", rawURL, "error", err)
		return nil, err
	}
	if resp.IsError() {
		err := fmt.Errorf("metadata api returned %s for %s", resp.Status(), resp.Request.URL)
		slog.Error("failed to fetch metadata", "network", m.network, "url", rawURL, "error", err)
		return nil, err
	}

	slog.Debug("fetched metadata", "url", resp.Request.URL)
	return out, nil
}

// makePaginatedAPICall fetches every page of a listing.
//
// Not every endpoint paginates, so a probe call is made first. A
// response whose meta carries no "limit" field does not paginate and is
// returned directly; likewise when the first page holds fewer items
// than the limit. Otherwise pages are fetched with _limit/_offset until
// an empty page arrives, and the items are concatenated under the
// probe's meta.
func (m *Manager) makePaginatedAPICall(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	initial, err := m.makeAPICall(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}

	limitValue, ok := initial.Meta["limit"]
	if !ok {
		return initial, nil
	}
	limit, ok := limitValue.(float64)
	if !ok || len(initial.Items) < int(limit) {
		return initial, nil
	}

	// Some endpoints change behaviour as soon as any params are
	// present, so params stays nil until pagination is certain.
	if params == nil {
		params = url.Values{}
	}

	meta := initial.Meta
	items := initial.Items

	params.Set("_limit", strconv.Itoa(m.pageSize))
	offset := 0
	for {
		offset += m.pageSize
		params.Set("_offset", strconv.Itoa(offset))

		page, err := m.makeAPICall(ctx, rawURL, params)
		if err != nil {
			return nil, err
		}
		if len(page.Items) == 0 {
			break
		}
		items = append(items, page.Items...)
	}

	return &Response{Meta: meta, Items: items}, nil
}

// FetchSites fetches all sites in the manager's network.
func (m *Manager) FetchSites(ctx context.Context) (*Response, error) {
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/id/network/%s", m.host, m.network), nil)
}

// FetchSiteMetadata fetches the metadata for a single site ID.
func (m *Manager) FetchSiteMetadata(ctx context.Context, siteID string) (*Response, error) {
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/id/site/%s", m.host, siteID), nil)
}

// FetchProcessingConfigs fetches processing configurations (infill, QC
// and/or correction) matching the given query parameters.
func (m *Manager) FetchProcessingConfigs(ctx context.Context, params url.Values) (*Response, error) {
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/id/data-processing-configuration.json", m.host), params)
}

// FetchTimeseriesMetadata fetches metadata for timeseries IDs matching
// the given query parameters.
func (m *Manager) FetchTimeseriesMetadata(ctx context.Context, params url.Values) (*Response, error) {
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/id/dataset", m.host), params)
}

// FetchDependentDatasetMetadata fetches the metadata of any
// dependencies of a dataset.
func (m *Manager) FetchDependentDatasetMetadata(ctx context.Context, timeseriesID string) (*Response, error) {
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/id/dataset/%s/_dependencies", m.host, timeseriesID), nil)
}

// FetchTimeseriesDerivationMetadata fetches derivation metadata for a
// timeseries definition.
func (m *Manager) FetchTimeseriesDerivationMetadata(ctx context.Context, timeseriesDef string) (*Response, error) {
	params := url.Values{}
	params.Set("_view", "derivation")
	params.Set("@id", timeseriesDef)
	return m.makePaginatedAPICall(ctx, fmt.Sprintf("%s/ref/time-series-definition", m.host), params)
}
