package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocko/css"
	"gocko/protocol"
	"gocko/uri"
)

// fakeHandler serves canned Responses keyed by exact URL string.
type fakeHandler struct {
	responses map[string]protocol.Response
}

func (f *fakeHandler) Handle(_ context.Context, u uri.URL) (protocol.Response, error) {
	resp, ok := f.responses[u.Raw]
	if !ok {
		return protocol.Response{}, &protocol.Error{Code: protocol.ErrUnresolved}
	}
	return resp, nil
}

func okResponse(body string) protocol.Response {
	return protocol.Response{Status: protocol.StatusLine{StatusCode: 200}, Body: []byte(body)}
}

func redirectResponse(location string) protocol.Response {
	var h protocol.Header
	h.Add("Location", location)
	return protocol.Response{Status: protocol.StatusLine{StatusCode: 302}, Header: h}
}

func TestNavigateBuildsStyledAndLayoutTrees(t *testing.T) {
	handler := &fakeHandler{responses: map[string]protocol.Response{
		"http://example.com/": okResponse(`<html><head><style>div{background-color:red}</style></head><body><div>hi</div></body></html>`),
	}}
	e := New(handler)

	page, err := e.Navigate(context.Background(), uri.MustParse("http://example.com/"), NavigateOptions{LayoutWidth: 800, ViewportHeight: 600})
	require.NoError(t, err)
	require.NotNil(t, page.Styled)
	require.NotNil(t, page.Layout)
	assert.NotEmpty(t, page.RequestID)
}

func TestNavigateFollowsRedirects(t *testing.T) {
	handler := &fakeHandler{responses: map[string]protocol.Response{
		"http://example.com/old": redirectResponse("http://example.com/new"),
		"http://example.com/new": okResponse(`<html><body>moved</body></html>`),
	}}
	e := New(handler)

	page, err := e.Navigate(context.Background(), uri.MustParse("http://example.com/old"), NavigateOptions{LayoutWidth: 800, ViewportHeight: 600})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/new", page.URL.Raw)
}

func TestNavigateReportsRedirectLimit(t *testing.T) {
	responses := map[string]protocol.Response{}
	for i := 0; i < maxRedirects+5; i++ {
		responses[uri.MustParse(stepURL(i)).Raw] = redirectResponse(stepURL(i + 1))
	}
	handler := &fakeHandler{responses: responses}
	e := New(handler)

	_, err := e.Navigate(context.Background(), uri.MustParse(stepURL(0)), NavigateOptions{})
	require.Error(t, err)
	nerr, ok := err.(*NavigationError)
	require.True(t, ok)
	assert.Equal(t, protocol.ErrRedirectLimit, nerr.Code)
}

func stepURL(i int) string {
	if i == 0 {
		return "http://example.com/step0"
	}
	return "http://example.com/step" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

func TestNavigateSplicesLinkedStylesheetsInDocumentOrder(t *testing.T) {
	handler := &fakeHandler{responses: map[string]protocol.Response{
		"http://example.com/": okResponse(`<html><head>
			<link rel="stylesheet" href="/a.css">
			<link rel="stylesheet" href="/b.css">
		</head><body><div>x</div></body></html>`),
		"http://example.com/a.css": okResponse("div { color: red; }"),
		"http://example.com/b.css": okResponse("div { color: blue; }"),
	}}
	e := New(handler)

	page, err := e.Navigate(context.Background(), uri.MustParse("http://example.com/"), NavigateOptions{LayoutWidth: 800, ViewportHeight: 600})
	require.NoError(t, err)

	// b.css comes later in the document, so its rule must be appended after
	// a.css's even though both fetches race concurrently.
	var colors []string
	for _, r := range page.Stylesheet.Rules {
		if v, ok := r.Declarations[css.Color]; ok {
			colors = append(colors, v)
		}
	}
	require.GreaterOrEqual(t, len(colors), 2)
	redIdx, blueIdx := -1, -1
	for i, c := range colors {
		if c == "red" && redIdx < 0 {
			redIdx = i
		}
		if c == "blue" && blueIdx < 0 {
			blueIdx = i
		}
	}
	require.NotEqual(t, -1, redIdx)
	require.NotEqual(t, -1, blueIdx)
	assert.Less(t, redIdx, blueIdx)
}

func TestRelayoutRunsWithoutNetworkIO(t *testing.T) {
	handler := &fakeHandler{responses: map[string]protocol.Response{
		"http://example.com/": okResponse(`<html><body><div>hi</div></body></html>`),
	}}
	e := New(handler)

	page, err := e.Navigate(context.Background(), uri.MustParse("http://example.com/"), NavigateOptions{LayoutWidth: 800, ViewportHeight: 600})
	require.NoError(t, err)

	resized := e.Relayout(page, NavigateOptions{LayoutWidth: 400, ViewportHeight: 600})
	require.NotNil(t, resized.Layout)
	assert.Equal(t, 400.0, resized.Layout.Width)
}
