package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gocko/archive"
	"gocko/css"
	"gocko/css/mediaquery"
	"gocko/dom"
	"gocko/htmlparse"
	"gocko/internal/metrics"
	"gocko/js"
	"gocko/layout"
	"gocko/protocol"
	"gocko/style"
	"gocko/uri"
)

// NavigateOptions configures one navigate() call.
type NavigateOptions struct {
	LayoutWidth    float64
	ViewportHeight float64
	DarkMode       bool
	EnableJS       bool
}

func (o NavigateOptions) mediaContext() mediaquery.Context {
	cs := mediaquery.Light
	if o.DarkMode {
		cs = mediaquery.Dark
	}
	return mediaquery.Context{
		WindowWidth:  int(o.LayoutWidth),
		WindowHeight: int(o.ViewportHeight),
		ColorScheme:  cs,
		MediaType:    mediaquery.Screen,
	}
}

func (o NavigateOptions) layoutOptions(fonts layout.FontProvider, images layout.ImageSizer) layout.Options {
	return layout.Options{
		ViewportWidth:  o.LayoutWidth,
		ViewportHeight: o.ViewportHeight,
		Fonts:          fonts,
		Images:         images,
	}
}

// PageState is the result of a successful navigate/relayout: the parsed
// document, the spliced stylesheet, and the styled + laid-out trees built
// from them.
type PageState struct {
	URL        uri.URL
	RequestID  string
	Document   *dom.Document
	Stylesheet *css.Stylesheet
	Styled     *style.Node
	Layout     *layout.Box
	Options    NavigateOptions
	Scripts    []js.Script
}

// Engine owns the collaborators a navigation needs: a fetch handler, an
// HTML parser, logging, metrics, and the font/image lookups layout needs.
type Engine struct {
	Handler protocol.Handler
	Parser  htmlparse.Parser
	Fonts   layout.FontProvider
	Images  layout.ImageSizer
	Log     *zap.Logger
	Metrics *metrics.Navigation
}

// New builds an Engine with the reference HTML parser and a monospace-only
// font provider; callers override Fonts/Images/Log/Metrics as needed.
func New(handler protocol.Handler) *Engine {
	return &Engine{
		Handler: handler,
		Parser:  htmlparse.NewTreeBuilder(),
		Fonts:   layout.NoFonts{},
		Log:     zap.NewNop(),
		Metrics: metrics.NewUnregisteredNavigation(),
	}
}

// Load performs a raw fetch with redirect handling, exposed for callers
// that need sub-resources (images, favicons) rather than a full page.
func (e *Engine) Load(ctx context.Context, u uri.URL) (protocol.Response, uri.URL, error) {
	current := u
	for redirects := 0; ; redirects++ {
		if redirects > maxRedirects {
			return protocol.Response{}, current, &NavigationError{URL: u, Code: protocol.ErrRedirectLimit}
		}

		resp, err := e.Handler.Handle(ctx, current)
		if err != nil {
			code := protocol.ErrUnresolved
			if perr, ok := err.(*protocol.Error); ok {
				code = perr.Code
			}
			return protocol.Response{}, current, &NavigationError{URL: current, Code: code, Cause: err}
		}

		if !redirectCodes[resp.Status.StatusCode] {
			return resp, current, nil
		}

		location, ok := resp.Header.Get("Location")
		if !ok || location == "" {
			return protocol.Response{}, current, &NavigationError{URL: current, Code: protocol.ErrInvalidResponse}
		}
		next, err := current.Resolve(location)
		if err != nil {
			return protocol.Response{}, current, &NavigationError{URL: current, Code: protocol.ErrInvalidResponse, Cause: err}
		}
		current = next
	}
}

// decompress applies Content-Encoding, per spec §4.8 step 2.
func decompress(resp protocol.Response, u uri.URL) ([]byte, error) {
	encoding, ok := resp.Header.Get("Content-Encoding")
	if !ok || encoding == "" {
		return resp.Body, nil
	}
	if !archive.Supported(encoding) {
		return nil, &NavigationError{URL: u, Code: protocol.ErrInvalidResponse}
	}
	body, err := archive.Decode(encoding, resp.Body)
	if err != nil {
		return nil, &NavigationError{URL: u, Code: protocol.ErrInvalidResponse, Cause: err}
	}
	return body, nil
}

// Navigate runs the full pipeline: load, decompress, parse, build the
// stylesheet (user-agent + inline <style> + fetched <link rel=stylesheet>,
// spliced in document order), then build the styled and layout trees.
func (e *Engine) Navigate(ctx context.Context, u uri.URL, opts NavigateOptions) (*PageState, error) {
	start := time.Now()
	page, err := e.navigate(ctx, u, opts)
	e.Metrics.Duration.Observe(time.Since(start).Seconds())
	if err != nil {
		e.Metrics.Total.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}
	e.Metrics.Total.WithLabelValues("ok").Inc()
	return page, nil
}

func outcomeLabel(err error) string {
	if nerr, ok := err.(*NavigationError); ok {
		return nerr.Code.String()
	}
	return "error"
}

func (e *Engine) navigate(ctx context.Context, u uri.URL, opts NavigateOptions) (*PageState, error) {
	reqID := uuid.New().String()
	log := e.Log.With(zap.String("request_id", reqID))

	resp, finalURL, err := e.Load(ctx, u)
	if err != nil {
		return nil, err
	}

	body, err := decompress(resp, finalURL)
	if err != nil {
		return nil, err
	}

	doc, err := e.Parser.Parse(ctx, body, htmlparse.ParseOptions{})
	if err != nil {
		return nil, &NavigationError{URL: finalURL, Code: protocol.ErrInvalidResponse, Cause: err}
	}

	sheet := DefaultStylesheet()
	spliceInlineStyles(sheet, doc.Root)

	if err := e.spliceLinkedStylesheets(ctx, sheet, doc.Root, finalURL); err != nil {
		log.Warn("linked stylesheet fetch failed", zap.Error(err))
	}

	styled := style.BuildStyleTree(doc.Root, sheet, opts.mediaContext())
	tree := layout.Run(styled, opts.layoutOptions(e.Fonts, e.Images))

	var scripts []js.Script
	if opts.EnableJS {
		scripts = js.Discover(doc.Root)
	}

	log.Info("navigated", zap.String("url", finalURL.Raw), zap.Int("scripts", len(scripts)))

	return &PageState{
		URL: finalURL, RequestID: reqID, Document: doc, Stylesheet: sheet,
		Styled: styled, Layout: tree, Options: opts, Scripts: scripts,
	}, nil
}

// Relayout re-runs the cascade and layout against the existing DOM and
// stylesheet, with no network I/O — for viewport/option changes.
func (e *Engine) Relayout(page *PageState, opts NavigateOptions) *PageState {
	styled := style.BuildStyleTree(page.Document.Root, page.Stylesheet, opts.mediaContext())
	tree := layout.Run(styled, opts.layoutOptions(e.Fonts, e.Images))
	return &PageState{
		URL: page.URL, Document: page.Document, Stylesheet: page.Stylesheet,
		Styled: styled, Layout: tree, Options: opts,
	}
}

// spliceInlineStyles locates every /html/head/style text child, parses it,
// and appends its rules in document order.
func spliceInlineStyles(sheet *css.Stylesheet, root *dom.Node) {
	for _, styleEl := range root.GetElementsByTagName("style") {
		if !isDescendantOfHead(root, styleEl) {
			continue
		}
		sheet.Append(css.Parse(styleEl.TextContent()).Rules...)
	}
}

func isDescendantOfHead(root *dom.Node, n *dom.Node) bool {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur == root {
			return false
		}
		if cur.IsElement("head") {
			return true
		}
	}
	return false
}

type linkResult struct {
	index int
	rules []css.Rule
}

// spliceLinkedStylesheets finds every //link[@rel=stylesheet][@href]
// descendant (body included), fetches them concurrently via errgroup, and
// appends their rules in document (discovery) order rather than completion
// order, per spec §4.8 step 6 / §5's ordering guarantee.
func (e *Engine) spliceLinkedStylesheets(ctx context.Context, sheet *css.Stylesheet, root *dom.Node, pageURL uri.URL) error {
	var links []*dom.Node
	for _, link := range root.GetElementsByTagName("link") {
		if strings.EqualFold(link.GetAttr("rel"), "stylesheet") && link.GetAttr("href") != "" {
			links = append(links, link)
		}
	}
	if len(links) == 0 {
		return nil
	}

	results := make([]linkResult, len(links))
	g, gctx := errgroup.WithContext(ctx)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			e.Metrics.InFlightFetches.Inc()
			defer e.Metrics.InFlightFetches.Dec()

			target, err := pageURL.Resolve(link.GetAttr("href"))
			if err != nil {
				e.Metrics.StylesheetFetches.WithLabelValues("bad_url").Inc()
				return nil
			}
			resp, _, err := e.Load(gctx, target)
			if err != nil {
				e.Metrics.StylesheetFetches.WithLabelValues("fetch_error").Inc()
				return nil
			}
			if target.IsHTTP() && resp.Status.StatusCode != 200 {
				e.Metrics.StylesheetFetches.WithLabelValues("bad_status").Inc()
				return nil
			}
			body, err := decompress(resp, target)
			if err != nil {
				e.Metrics.StylesheetFetches.WithLabelValues("decode_error").Inc()
				return nil
			}
			e.Metrics.StylesheetFetches.WithLabelValues("ok").Inc()
			results[i] = linkResult{index: i, rules: css.Parse(string(body)).Rules}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		sheet.Append(r.rules...)
	}
	return nil
}
