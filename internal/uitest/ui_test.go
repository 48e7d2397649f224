package uitest

import (
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/txt2html/internal/app/component"
)

const (
	// defaultTimeout is the default timeout for all browser operations.
	defaultTimeout = 10 * time.Second
	// stableTimeout is the timeout for waiting for page stability.
	stableTimeout = 5 * time.Second
)

// testPage wraps a rod.Page with consistent timeout handling.
type testPage struct {
	*rod.Page

	t *testing.T
}

// el finds a single element with the default timeout.
func (p *testPage) el(selector string) *rod.Element {
	return p.Page.Timeout(defaultTimeout).MustElement(selector)
}

// elMaybe finds an element or returns nil if not found.
func (p *testPage) elMaybe(selector string) *rod.Element {
	el, err := p.Page.Timeout(defaultTimeout).Element(selector)
	if err != nil {
		return nil
	}
	return el
}

// click clicks an element found by selector and waits for page stability.
func (p *testPage) click(selector string) {
	p.el(selector).MustClick()
	p.waitStable()
}

// waitStable waits for the page to stabilize after a DOM update.
func (p *testPage) waitStable() {
	p.Page.Timeout(stableTimeout).MustWaitStable()
}

// waitRequestIdle waits for all network requests to complete, for use after
// triggering the preview page's fetch()-based conversion.
func (p *testPage) waitRequestIdle() {
	p.Page.Timeout(defaultTimeout).MustWaitRequestIdle()()
}

// TestUI is the parent test that sets up the browser and server, then runs
// all UI subtests. It skips when running with -short flag.
func TestUI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping UI tests in short mode")
	}

	srv := newTestServer()
	t.Cleanup(srv.Close)

	path, _ := launcher.LookPath()
	u := launcher.New().Bin(path).Headless(true).MustLaunch()
	browser := rod.New().ControlURL(u).MustConnect()
	t.Cleanup(func() { browser.MustClose() })

	newPage := func(t *testing.T) *testPage {
		t.Helper()
		page := browser.Timeout(defaultTimeout).MustPage(srv.URL("/"))
		t.Cleanup(func() {
			_ = page.Close()
		})
		page.Timeout(stableTimeout).MustWaitStable()
		return &testPage{Page: page, t: t}
	}

	t.Run("PreviewPageRendersForm", func(t *testing.T) {
		testPreviewPageRendersForm(t, newPage)
	})
	t.Run("ConvertButtonRendersOutput", func(t *testing.T) {
		testConvertButtonRendersOutput(t, newPage)
	})
	t.Run("BlankInputShowsNoError", func(t *testing.T) {
		testBlankInputShowsNoError(t, newPage)
	})
	t.Run("HistoryPageListsConversion", func(t *testing.T) {
		testHistoryPageListsConversion(t, newPage, srv)
	})
}

func testPreviewPageRendersForm(t *testing.T, newPage func(*testing.T) *testPage) {
	t.Parallel()
	page := newPage(t)

	textarea := page.elMaybe(component.SelInputText)
	require.NotNil(t, textarea, "expected the paste-in textarea to be present")

	form := page.elMaybe(component.SelConvertForm)
	require.NotNil(t, form, "expected the convert form to be present")
}

func testConvertButtonRendersOutput(t *testing.T, newPage func(*testing.T) *testPage) {
	t.Parallel()
	page := newPage(t)

	page.el(component.SelInputText).MustInput("Hello world.\n\nA second paragraph.")
	page.click("button[type=submit]")
	page.waitRequestIdle()

	raw := page.el(component.SelRawOutput).MustText()
	assert.Contains(t, raw, "Hello world.")
	assert.Contains(t, raw, "A second paragraph.")
}

func testBlankInputShowsNoError(t *testing.T, newPage func(*testing.T) *testPage) {
	t.Parallel()
	page := newPage(t)

	page.click("button[type=submit]")
	page.waitRequestIdle()

	errBox := page.elMaybe(component.SelErrorBox)
	if errBox != nil {
		assert.Empty(t, errBox.MustText())
	}
}

func testHistoryPageListsConversion(t *testing.T, newPage func(*testing.T) *testPage, srv *Server) {
	page := newPage(t)

	page.el(component.SelInputText).MustInput("Recorded conversion.")
	page.click("button[type=submit]")
	page.waitRequestIdle()

	history := browserGet(t, page, srv.URL("/history"))
	assert.Contains(t, history, "bytes in")
}

// browserGet navigates an existing page to url and returns its rendered text
// content, leaving the page on url afterward.
func browserGet(t *testing.T, page *testPage, url string) string {
	t.Helper()
	page.Page.Timeout(defaultTimeout).MustNavigate(url).MustWaitLoad()
	return page.el("body").MustText()
}
