// Package figma is a thin client for the Figma REST API. Responses are
// passed through as raw JSON.
package figma

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mj1618/uibuilder/internal/errors"
)

// DefaultBaseURL is the public Figma API root.
const DefaultBaseURL = "https://api.figma.com/v1"

// maxResponseSize caps a file document download.
const maxResponseSize = 64 << 20

var (
	fileURLPattern = regexp.MustCompile(`/(?:file|design|proto)/([A-Za-z0-9]+)`)
	bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ExtractFileKey returns the file key from a Figma URL such as
// https://www.figma.com/file/<key>/Name, or the input itself when it is
// already a bare key.
func ExtractFileKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	if m := fileURLPattern.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if bareKeyPattern.MatchString(s) {
		return s, nil
	}
	return "", errors.WithHint(
		errors.Newf("no figma file key in %q", s),
		"pass a figma.com/file/<key> or figma.com/design/<key> URL, or the key itself")
}

// Client calls the Figma API with a personal access token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetFile fetches the document tree of a file.
func (c *Client) GetFile(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.get(ctx, "/files/"+url.PathEscape(fileKey), nil)
}

// GetFileImages fetches the image fill URLs of a file.
func (c *Client) GetFileImages(ctx context.Context, fileKey string) (json.RawMessage, error) {
	return c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/images", nil)
}

// GetNodes fetches a subset of nodes of a file by id.
func (c *Client) GetNodes(ctx context.Context, fileKey string, ids ...string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	return c.get(ctx, "/files/"+url.PathEscape(fileKey)+"/nodes", q)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "figma api: " + http.StatusText(e.StatusCode)
	}
	return "figma api: " + http.StatusText(e.StatusCode) + ": " + e.Body
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	if c.token == "" {
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrNotConfigured, "figma token is not set"),
			"set FIGMA_API_KEY (or UIBUILDER_FIGMA_TOKEN)")
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build figma request")
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "figma request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "read figma response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if !json.Valid(body) {
		return nil, errors.New("figma api returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
