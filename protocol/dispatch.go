package protocol

import (
	"context"
	"io"
	"net/http"
	"os"
	"sync"

	"gocko/uri"
)

// SchemeHandlers maps a URL scheme to the Handler responsible for it.
type SchemeHandlers map[string]Handler

// Dispatcher is a Handler that routes by URL scheme to a registered
// sub-handler, reporting ErrUnhandled for anything unregistered.
type Dispatcher struct {
	handlers SchemeHandlers
}

// NewDispatcher builds a multi-scheme Handler from the given scheme table.
func NewDispatcher(handlers SchemeHandlers) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// Handle implements Handler.
func (d *Dispatcher) Handle(ctx context.Context, u uri.URL) (Response, error) {
	h, ok := d.handlers[u.Scheme]
	if !ok {
		return Response{}, &Error{Code: ErrUnhandled}
	}
	return h.Handle(ctx, u)
}

// HTTPHandler is a Handler backed by net/http, for the http/https schemes.
type HTTPHandler struct {
	Client *http.Client
}

// NewHTTPHandler returns an HTTPHandler using http.DefaultClient when client is nil.
func NewHTTPHandler(client *http.Client) *HTTPHandler {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPHandler{Client: client}
}

// Handle performs the HTTP request and adapts the result into a Response.
// Redirects are NOT followed here; that is the engine's job (it needs to
// inspect and bound redirect chains itself), so the client must have
// redirect-following disabled.
func (h *HTTPHandler) Handle(ctx context.Context, u uri.URL) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.Raw, nil)
	if err != nil {
		return Response{}, &Error{Code: ErrUnresolved, Err: err}
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return Response{}, &Error{Code: ErrUnresolved, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &Error{Code: ErrInvalidResponse, Err: err}
	}

	var header Header
	for key, values := range resp.Header {
		for _, v := range values {
			header.Add(key, v)
		}
	}

	return Response{
		Status: StatusLine{
			Version:    resp.Proto,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		},
		Header: header,
		Body:   body,
	}, nil
}

// FileHandler serves file:// URLs off the local filesystem.
type FileHandler struct{}

// Handle reads u.Path from disk.
func (FileHandler) Handle(_ context.Context, u uri.URL) (Response, error) {
	body, err := os.ReadFile(u.Path)
	if err != nil {
		return Response{}, &Error{Code: ErrUnresolved, Err: err}
	}
	return Response{
		Status: StatusLine{Version: "file", StatusCode: 200, Reason: "OK"},
		Body:   body,
	}, nil
}

// CachingHandler wraps a Handler with an in-memory response cache keyed by
// canonical URL string. The cache is reset at the start of each navigation
// by calling Reset; entries are never individually invalidated during a page.
type CachingHandler struct {
	inner Handler
	mu    sync.RWMutex
	cache map[string]Response
}

// NewCachingHandler wraps inner with a fresh, empty cache.
func NewCachingHandler(inner Handler) *CachingHandler {
	return &CachingHandler{inner: inner, cache: make(map[string]Response)}
}

// Handle serves from cache when present, otherwise delegates and stores the result.
func (c *CachingHandler) Handle(ctx context.Context, u uri.URL) (Response, error) {
	c.mu.RLock()
	if resp, ok := c.cache[u.Raw]; ok {
		c.mu.RUnlock()
		return resp, nil
	}
	c.mu.RUnlock()

	resp, err := c.inner.Handle(ctx, u)
	if err != nil {
		return resp, err
	}

	c.mu.Lock()
	c.cache[u.Raw] = resp
	c.mu.Unlock()
	return resp, nil
}

// Reset clears the cache. Call this at the start of every navigation.
func (c *CachingHandler) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]Response)
}
