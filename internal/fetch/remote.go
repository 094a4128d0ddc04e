// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/paperscope/internal/httputil"
	"github.com/pdiddy/paperscope/pkg/types"
)

const (
	// DefaultEndpoint applies when no endpoint is configured.
	DefaultEndpoint = "http://localhost:8000"

	// DefaultLimit is the number of results requested when the caller
	// passes a non-positive limit.
	DefaultLimit = 10

	// maxLimit is the largest limit the service accepts.
	maxLimit = 50
)

// RemoteFetcher queries the recommendation service's /recommend endpoint.
type RemoteFetcher struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

// NewRemoteFetcher builds a remote fetcher from configuration. The HTTP
// client's timeout is the only resilience mechanism: on expiry the fetch
// fails with a network-kind error and is not retried.
func NewRemoteFetcher(cfg types.SearchConfig) *RemoteFetcher {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &RemoteFetcher{
		client:    httputil.NewClient(cfg.HTTPConfig),
		endpoint:  endpoint,
		userAgent: cfg.UserAgent,
	}
}

// Name returns the strategy identifier.
func (f *RemoteFetcher) Name() string { return "remote" }

// Fetch requests papers for query and maps each result into the display
// shape. Transport failures, timeouts, and non-2xx responses all surface as
// a network-kind *Error; individual malformed results degrade to defaults
// instead of failing the set.
func (f *RemoteFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}
	reqURL := f.endpoint + "/recommend?" + params.Encode()

	var rr recommendResponse
	if err := httputil.GetJSON(ctx, f.client, reqURL, f.userAgent, &rr); err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	now := time.Now()
	papers := make([]types.Paper, 0, len(rr.Results))
	for _, item := range rr.Results {
		papers = append(papers, normalizePaper(item, now))
	}
	return papers, nil
}
