// Package http wraps the retrying HTTP transport used by every resource
// client. It owns header injection, query encoding, the optional read cache,
// and translation of upstream error envelopes.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tcgkit-io/ptcg/internal/constants"
	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

// Request represents an outgoing API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
}

// Response represents an API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Options configures the transport.
type Options struct {
	// APIKey is sent as the X-Api-Key header when non-empty.
	APIKey string

	// UserAgent is sent on every request.
	UserAgent string

	// RetryMax, RetryWaitMin and RetryWaitMax tune the retry policy.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Timeout bounds each attempt.
	Timeout time.Duration

	// Logger receives debug output when Debug is set.
	Logger ptcg.Logger
	Debug  bool

	// Interceptors run around every request.
	Interceptors *ptcg.InterceptorChain

	// Cache, when non-nil, serves repeated GETs from a read cache.
	Cache *ptcg.CacheManager

	// CacheOptions set the entry lifetimes used when Cache is non-nil.
	CacheOptions *ptcg.CacheOptions
}

// Client issues requests against a fixed base URL.
type Client struct {
	baseURL      string
	retryClient  *retryablehttp.Client
	apiKey       string
	userAgent    string
	logger       ptcg.Logger
	debug        bool
	interceptors *ptcg.InterceptorChain
	cache        *ptcg.CacheManager
	cacheOptions *ptcg.CacheOptions
}

// NewClient creates a transport for the given base URL. A nil options value
// uses defaults: no API key, default retry policy, no cache.
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	// RetryMax < 0 disables retries entirely.
	retryClient.RetryMax = constants.DefaultRetryMax
	if opts.RetryMax > 0 {
		retryClient.RetryMax = opts.RetryMax
	} else if opts.RetryMax < 0 {
		retryClient.RetryMax = 0
	}

	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	if opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = opts.RetryWaitMin
	}

	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	if opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = opts.RetryWaitMax
	}

	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	if opts.Timeout > 0 {
		retryClient.HTTPClient.Timeout = opts.Timeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	interceptors := opts.Interceptors
	if interceptors == nil {
		interceptors = ptcg.NewInterceptorChain()
	}

	if opts.Debug && opts.Logger != nil {
		interceptors.AddRequestInterceptor(ptcg.TimingInterceptor())
		interceptors.AddRequestInterceptor(ptcg.LoggingInterceptor(opts.Logger))
		interceptors.AddResponseInterceptor(ptcg.LoggingResponseInterceptor(opts.Logger))
		interceptors.AddResponseInterceptor(ptcg.TimingResponseInterceptor(opts.Logger))
	}

	cacheOptions := opts.CacheOptions
	if cacheOptions == nil {
		cacheOptions = ptcg.DefaultCacheOptions()
	}

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		retryClient:  retryClient,
		apiKey:       opts.APIKey,
		userAgent:    userAgent,
		logger:       opts.Logger,
		debug:        opts.Debug,
		interceptors: interceptors,
		cache:        opts.Cache,
		cacheOptions: cacheOptions,
	}
}

// Get issues a GET request against path with an optional query string.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do executes the request, consulting the read cache for GETs when one is
// configured.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	cacheKey := c.cacheKey(req)

	if cached := c.fromCache(ctx, req, cacheKey); cached != nil {
		return cached, nil
	}

	interceptReq := &ptcg.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: cloneHeader(req.Headers),
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, req, interceptReq.Headers)

	interceptResp := &ptcg.Response{Error: err}
	if resp != nil {
		interceptResp.StatusCode = resp.StatusCode
		interceptResp.Headers = resp.Headers
		interceptResp.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
	if interceptErr != nil {
		return nil, interceptErr
	}

	if err != nil {
		return nil, err
	}

	c.toCache(ctx, req, cacheKey, resp)

	return resp, nil
}

// send performs the actual HTTP round trip.
func (c *Client) send(ctx context.Context, req *Request, extraHeaders http.Header) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.apiKey != "" {
		httpReq.Header.Set(constants.APIKeyHeader, c.apiKey)
	}

	for key, values := range extraHeaders {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return nil, parseErrorResponse(resp)
	}

	return resp, nil
}

// parseErrorResponse turns a non-2xx response into a *ptcg.ResponseError.
func parseErrorResponse(resp *Response) error {
	respErr := &ptcg.ResponseError{StatusCode: resp.StatusCode}

	if len(resp.Body) > 0 {
		// Best effort; the status code alone is enough to classify the error.
		_ = json.Unmarshal(resp.Body, respErr)
	}

	if respErr.Err.Code == 0 {
		respErr.Err.Code = resp.StatusCode
	}

	return respErr
}

// cacheKey builds the cache key for a request, or "" when caching is off or
// the request is not cacheable.
func (c *Client) cacheKey(req *Request) string {
	if c.cache == nil || req.Method != http.MethodGet {
		return ""
	}

	params := make(map[string]string, len(req.Query))
	for key := range req.Query {
		params[key] = req.Query.Get(key)
	}

	return c.cache.GetCacheKey(req.Method, req.Path, params)
}

// fromCache serves a cached response body when available.
func (c *Client) fromCache(ctx context.Context, req *Request, key string) *Response {
	if key == "" {
		return nil
	}

	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("cache hit", map[string]interface{}{"path": req.Path})
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       data,
	}
}

// toCache stores a successful GET response.
func (c *Client) toCache(ctx context.Context, req *Request, key string, resp *Response) {
	if key == "" || resp == nil {
		return
	}

	if !c.cache.Policy().ShouldCache(req.Method, req.Path, resp.StatusCode) {
		return
	}

	ttl := c.cacheOptions.DefaultTTL
	if isCatalogPath(req.Path) {
		ttl = c.cacheOptions.CatalogTTL
	}

	err := c.cache.SetWithETag(ctx, key, resp.Body, resp.Headers.Get("ETag"), ttl)
	if err != nil && c.logger != nil {
		c.logger.Warn("cache store failed", map[string]interface{}{
			"path":  req.Path,
			"error": err.Error(),
		})
	}
}

// isCatalogPath reports whether the path serves one of the near-static
// catalog collections.
func isCatalogPath(path string) bool {
	trimmed := strings.Trim(path, "/")

	switch trimmed {
	case ptcg.KindType.Path(), ptcg.KindSupertype.Path(), ptcg.KindSubtype.Path(), ptcg.KindRarity.Path():
		return true
	default:
		return false
	}
}

// cloneHeader copies a header map so interceptors can mutate it safely.
func cloneHeader(src http.Header) http.Header {
	dst := make(http.Header, len(src))

	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}

	return dst
}
