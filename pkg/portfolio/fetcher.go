package portfolio

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nikogura/portfolio-builder/pkg/resume"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves portfolio records from the backend API.
type Fetcher struct {
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewFetcher creates a fetcher. An empty token sends no Authorization header.
func NewFetcher(token string) (fetcher *Fetcher) {
	fetcher = &Fetcher{
		token:     token,
		userAgent: "portfolio-builder/1.0",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	return fetcher
}

// Fetch downloads a record from an http(s) endpoint and applies the selector.
func (f *Fetcher) Fetch(ctx context.Context, endpoint, selector string) (record resume.Record, err error) {
	parsed, urlErr := url.Parse(endpoint)
	if urlErr != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		err = errors.Errorf("not an http(s) URL: %s", endpoint)
		return record, err
	}

	var body []byte
	body, err = f.get(ctx, endpoint)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch portfolio from %s", endpoint)
		return record, err
	}

	record, err = Decode(body, selector)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode portfolio from %s", endpoint)
		return record, err
	}

	return record, err
}

func (f *Fetcher) get(ctx context.Context, endpoint string) (body []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return body, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	var resp *http.Response
	resp, err = f.httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return body, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return body, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status %d: %s", resp.StatusCode, string(body))
		return body, err
	}

	return body, err
}

// ResolveEndpoint joins the backend base URL with a portfolio path.
func ResolveEndpoint(baseURL, path string) (endpoint string, err error) {
	var base *url.URL
	base, err = url.Parse(baseURL)
	if err != nil {
		err = errors.Wrapf(err, "invalid backend URL: %s", baseURL)
		return endpoint, err
	}

	var ref *url.URL
	ref, err = url.Parse(path)
	if err != nil {
		err = errors.Wrapf(err, "invalid portfolio path: %s", path)
		return endpoint, err
	}

	endpoint = base.ResolveReference(ref).String()
	return endpoint, err
}
