package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"sync"

	"github.com/leighmacdonald/folio/internal/cache"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/network/encoding"
)

const (
	maxResumeSize     = 10 << 20
	defaultResumeName = "resume.pdf"
)

var errBaseURL = errors.New("invalid api base url")

// Health is the response of the api root.
type Health struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ErrorResponse is the body returned with any non-2xx status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Client talks to a running `folio serve` instance.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cache      cache.Cache

	mu         sync.Mutex
	resumeName string
}

type ClientOption func(c *Client)

// WithResumeFilename sets the name the resume is expected to be cached under before the first
// download reports the real one.
func WithResumeFilename(name string) ClientOption {
	return func(c *Client) {
		if name != "" {
			c.resumeName = name
		}
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = client }
}

// WithCache stores downloaded files so they can be opened locally.
func WithCache(fsCache cache.Cache) ClientOption {
	return func(c *Client) { c.cache = fsCache }
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	parsed, errParse := url.Parse(baseURL)
	if errParse != nil {
		return nil, errors.Join(errParse, errBaseURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", errBaseURL, baseURL)
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: config.DefaultHTTPTimeout},
		resumeName: defaultResumeName,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func (c *Client) Submit(ctx context.Context, submission contact.Submission) (contact.Receipt, error) {
	if err := submission.Validate(); err != nil {
		return contact.Receipt{}, err
	}

	body, errBody := encodeBody(submission.Normalize())
	if errBody != nil {
		return contact.Receipt{}, errBody
	}

	resp, errResp := c.do(ctx, http.MethodPost, body, "api", "contact")
	if errResp != nil {
		return contact.Receipt{}, errResp
	}
	defer closeBody(resp)

	receipt, errDecode := encoding.UnmarshalJSON[contact.Receipt](resp.Body)
	if errDecode != nil {
		return contact.Receipt{}, errors.Join(errDecode, ErrServer)
	}

	return receipt, nil
}

func (c *Client) Stats(ctx context.Context) (contact.Stats, error) {
	resp, errResp := c.do(ctx, http.MethodGet, nil, "api", "stats")
	if errResp != nil {
		return contact.Stats{}, errResp
	}
	defer closeBody(resp)

	stats, errDecode := encoding.UnmarshalJSON[contact.Stats](resp.Body)
	if errDecode != nil {
		return contact.Stats{}, errors.Join(errDecode, ErrServer)
	}

	return stats, nil
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	resp, errResp := c.do(ctx, http.MethodGet, nil, "api", "/")
	if errResp != nil {
		return Health{}, errResp
	}
	defer closeBody(resp)

	health, errDecode := encoding.UnmarshalJSON[Health](resp.Body)
	if errDecode != nil {
		return Health{}, errors.Join(errDecode, ErrServer)
	}

	return health, nil
}

// DownloadResume fetches the resume and, when a cache is configured, stores a local copy. A
// cached copy younger than the cache age limit is returned without contacting the server.
func (c *Client) DownloadResume(ctx context.Context) (Resume, error) {
	if resume, found := c.cachedResume(); found {
		slog.Debug("Using cached resume", slog.String("path", resume.Path))

		return resume, nil
	}

	resp, errResp := c.do(ctx, http.MethodGet, nil, "api", "resume", "download")
	if errResp != nil {
		return Resume{}, errResp
	}
	defer closeBody(resp)

	resume := Resume{
		DownloadURL: resp.Request.URL.String(),
		Filename:    defaultResumeName,
	}

	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		resume.Filename = params["filename"]
	}

	if c.cache == nil {
		return resume, nil
	}

	body, errRead := io.ReadAll(io.LimitReader(resp.Body, maxResumeSize))
	if errRead != nil {
		return Resume{}, errors.Join(errRead, ErrTransport)
	}

	if err := c.cache.Set(resume.Filename, body); err != nil {
		return Resume{}, err
	}

	resume.Path = c.cache.Path(resume.Filename)

	c.mu.Lock()
	c.resumeName = resume.Filename
	c.mu.Unlock()

	return resume, nil
}

func (c *Client) cachedResume() (Resume, bool) {
	if c.cache == nil {
		return Resume{}, false
	}

	c.mu.Lock()
	name := c.resumeName
	c.mu.Unlock()

	if _, err := c.cache.Get(name); err != nil {
		return Resume{}, false
	}

	return Resume{
		DownloadURL: c.endpoint("api", "resume", "download"),
		Filename:    name,
		Path:        c.cache.Path(name),
	}, true
}

func (c *Client) endpoint(elem ...string) string {
	return c.baseURL.JoinPath(elem...).String()
}

// do performs the request, returning the response only for 2xx statuses. The caller must close
// the body.
func (c *Client) do(ctx context.Context, method string, body []byte, elem ...string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	endpoint := c.endpoint(elem...)

	req, errReq := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if errReq != nil {
		return nil, errors.Join(errReq, ErrTransport)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("API Request", slog.String("method", method), slog.String("url", endpoint))

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		slog.Error("API Error", slog.String("url", endpoint), slog.String("error", errResp.Error()))

		return nil, errors.Join(errResp, ErrTransport)
	}

	slog.Debug("API Response", slog.Int("status", resp.StatusCode), slog.String("url", endpoint))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer closeBody(resp)

		serverErr := ServerError{Status: resp.StatusCode}
		if detail, err := encoding.UnmarshalJSON[ErrorResponse](resp.Body); err == nil {
			serverErr.Detail = detail.Detail
		}

		slog.Error("API Error", slog.Int("status", resp.StatusCode), slog.String("detail", serverErr.Detail))

		return nil, serverErr
	}

	return resp, nil
}

func encodeBody(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoding.MarshalJSON(&buf, value); err != nil {
		return nil, errors.Join(err, ErrTransport)
	}

	return buf.Bytes(), nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		slog.Error("failed to close response body", slog.String("error", err.Error()))
	}
}
