package component

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/corvid-labs/txt2html/internal/storage"
)

// PreviewPage renders the paste-in form: a textarea posting to /convert via
// fetch(), with a sandboxed iframe preview and a raw-markup panel underneath.
// Hand-written against templ's public Component contract (Render(ctx,
// io.Writer) error) rather than the templ CLI's generated output, since the
// CLI itself cannot be run in this exercise (see DESIGN.md).
func PreviewPage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>txt2html</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<h1>txt2html</h1>
<form id="%s">
<textarea id="%s" name="text" rows="20" cols="80" placeholder="Paste plain text here..."></textarea>
<div>
<button type="submit">Convert</button>
</div>
</form>
<div id="%s"></div>
<iframe id="%s" sandbox=""></iframe>
<pre id="%s"></pre>
<script src="/static/preview.js"></script>
</body>
</html>
`,
			IDConvertForm, IDInputText, IDErrorBox, IDOutputFrame, IDRawOutput)
		return err
	})
}

// HistoryPage renders the conversion audit log as an HTML list.
func HistoryPage(records []storage.ConversionRecord, nextToken string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>txt2html history</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<h1>Conversion history</h1>
<ul id="%s">
`, IDHistoryList); err != nil {
			return err
		}
		for _, rec := range records {
			if _, err := fmt.Fprintf(w, "<li>%s &mdash; %d bytes in, %d bytes out%s</li>\n",
				html.EscapeString(rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00")),
				rec.InputBytes, rec.OutputBytes, dictionarySuffix(rec.DictionaryName)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		if nextToken != "" {
			if _, err := fmt.Fprintf(w, `<a href="/history?page_token=%s">next</a>`+"\n", html.EscapeString(nextToken)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func dictionarySuffix(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(" (dictionary: %s)", html.EscapeString(name))
}
