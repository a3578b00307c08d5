package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher is anything that can produce the current transcript. *Client and
// *FileSource implement it.
type Fetcher interface {
	FetchTranscript(ctx context.Context) (Transcript, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to a transcription server's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tail      int
}

const (
	defaultAPIBind   = "127.0.0.1:8000"
	defaultUserAgent = "subline/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
// tail, when positive, asks the server for only the most recent sentences.
func NewClient(apiBind string, tail int) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		tail:      tail,
	}, nil
}

// FetchTranscript retrieves the current sentences and cursor flag.
func (c *Client) FetchTranscript(ctx context.Context) (Transcript, error) {
	if c == nil {
		return Transcript{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if c.tail > 0 {
		values.Set("tail", strconv.Itoa(c.tail))
	}
	rel := &url.URL{Path: "/api/transcript", RawQuery: values.Encode()}
	var payload Transcript
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Transcript{}, err
	}
	// Servers that ignore the query still get trimmed here.
	return payload.Tail(c.tail), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
