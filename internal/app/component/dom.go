// Package component provides the DOM ids/selectors and hand-built templ
// components rendered by the preview page.
package component

// DOM element IDs used by the preview page's client-side script and
// exercised directly by internal/uitest.
const (
	IDInputText   = "input-text"
	IDConvertForm = "convert-form"
	IDOutputFrame = "output-frame"
	IDRawOutput   = "raw-output"
	IDErrorBox    = "error-box"
	IDHistoryList = "history-list"
)

// CSS selectors built from the IDs above, for use in tests and client script.
const (
	SelInputText   = "#" + IDInputText
	SelConvertForm = "#" + IDConvertForm
	SelOutputFrame = "#" + IDOutputFrame
	SelRawOutput   = "#" + IDRawOutput
	SelErrorBox    = "#" + IDErrorBox
	SelHistoryList = "#" + IDHistoryList
)
