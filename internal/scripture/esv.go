// Package scripture wraps the ESV passage API. The server proxies
// lookups so the API key never reaches clients.
package scripture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/graceware/prayerdeck/pkg/metrics"
)

const (
	defaultBaseURL = "https://api.esv.org/v3"
	clientTimeout  = 10 * time.Second
)

type ClientI interface {
	// Search runs a free-text passage search and returns the raw
	// upstream JSON document
	Search(ctx context.Context, query string) ([]byte, error)
	// PassageText fetches plain passage text for a reference, stripped
	// of headings, footnotes and verse numbers
	PassageText(ctx context.Context, reference string) ([]byte, error)
}

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: clientTimeout},
	}
}

// NewWithBaseURL exists for tests pointed at a local stub server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) Search(ctx context.Context, query string) ([]byte, error) {
	endpoint := c.baseURL + "/passage/search/?q=" + url.QueryEscape(query)
	return c.get(ctx, "search", endpoint)
}

func (c *Client) PassageText(ctx context.Context, reference string) ([]byte, error) {
	endpoint := c.baseURL + "/passage/text/?q=" + url.QueryEscape(reference) +
		"&include-headings=false&include-footnotes=false&include-verse-numbers=false&include-short-copyright=false"
	return c.get(ctx, "text", endpoint)
}

func (c *Client) get(ctx context.Context, name, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.New("building scripture request error: " + err.Error())
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RecordScriptureLookupDuration(name, "error", time.Since(start))
		return nil, errors.New("scripture request error: " + err.Error())
	}
	defer resp.Body.Close()
	metrics.RecordScriptureLookupDuration(name, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scripture api status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading scripture response error: " + err.Error())
	}
	// Upstream responses pass through untouched, but reject documents
	// that aren't JSON before handing them to clients
	if !sonic.Valid(body) {
		return nil, errors.New("scripture api returned non-JSON body")
	}
	return body, nil
}
