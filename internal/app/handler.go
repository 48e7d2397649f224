package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/corvid-labs/txt2html/internal/app/component"
	"github.com/corvid-labs/txt2html/internal/content"
	"github.com/corvid-labs/txt2html/internal/convert"
	"github.com/corvid-labs/txt2html/internal/pagination"
	"github.com/corvid-labs/txt2html/internal/storage"
)

type handler struct {
	store storage.Store
}

func (h handler) register(e *echo.Echo) {
	e.GET("/", h.previewPage)
	e.POST("/convert", h.convert)
	e.GET("/history", h.history)
}

func (h handler) previewPage(c echo.Context) error {
	return component.PreviewPage().Render(c.Request().Context(), c.Response())
}

// convertRequestOptions is the JSON API's options payload, mirroring spec.md
// §6's options relevant to a single conversion. Zero values fall back to
// convert.DefaultOptions() via convert.Options.withDefaults.
type convertRequestOptions struct {
	Title          string `json:"title"`
	TitleFirst     bool   `json:"title_first"`
	Extract        bool   `json:"extract"`
	XHTML          bool   `json:"xhtml"`
	MakeTables     bool   `json:"make_tables"`
	Mailmode       bool   `json:"mailmode"`
	LinkOnly       bool   `json:"link_only"`
	EightBitClean  bool   `json:"eight_bit_clean"`
	EscapeHTML     *bool  `json:"escape_html"`
	MakeLinks      *bool  `json:"make_links"`
	MakeAnchors    *bool  `json:"make_anchors"`
	StyleURL       string `json:"style_url"`
	DictionaryName string `json:"dictionary_name"`
}

type convertRequest struct {
	Text    string                `json:"text"`
	Options convertRequestOptions `json:"options"`
}

type convertResponse struct {
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h handler) convert(c echo.Context) error {
	ctx := c.Request().Context()

	var req convertRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
	}

	opts := convert.DefaultOptions()
	opts.Title = req.Options.Title
	opts.TitleFirst = req.Options.TitleFirst
	opts.Extract = req.Options.Extract
	opts.XHTML = req.Options.XHTML
	opts.MakeTables = req.Options.MakeTables
	opts.Mailmode = req.Options.Mailmode
	opts.LinkOnly = req.Options.LinkOnly
	opts.EightBitClean = req.Options.EightBitClean
	opts.StyleURL = req.Options.StyleURL
	opts.EscapeHTML = boolOr(req.Options.EscapeHTML, opts.EscapeHTML)
	opts.MakeLinks = boolOr(req.Options.MakeLinks, opts.MakeLinks)
	opts.MakeAnchors = boolOr(req.Options.MakeAnchors, opts.MakeAnchors)

	if req.Options.DictionaryName != "" {
		source, err := h.store.LoadDictionary(ctx, req.Options.DictionaryName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "dictionary not found"})
			}
			return fmt.Errorf("failed to load dictionary: %w", err)
		}
		opts.LinksDictionaries = append(opts.LinksDictionaries, source)
	}

	normalized, err := content.NormalizeNBSP().Transform([]byte(req.Text))
	if err != nil {
		return fmt.Errorf("failed to normalize input: %w", err)
	}

	converter, err := convert.New(opts)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid options: %v", err)})
	}

	var out strings.Builder
	if err := converter.ConvertDocument([]io.Reader{bytes.NewReader(normalized)}, &out); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	sanitized, err := content.SanitizeHTML().Transform([]byte(out.String()))
	if err != nil {
		return fmt.Errorf("failed to sanitize output: %w", err)
	}

	if err := h.recordConversion(ctx, opts, req.Options.DictionaryName, len(req.Text), len(sanitized)); err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	return c.JSON(http.StatusOK, convertResponse{HTML: string(sanitized)})
}

func (h handler) recordConversion(ctx context.Context, opts convert.Options, dictName string, inBytes, outBytes int) error {
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	return h.store.RecordConversion(ctx, storage.ConversionRecord{
		OptionsJSON:    string(optsJSON),
		InputBytes:     inBytes,
		OutputBytes:    outBytes,
		DictionaryName: dictName,
	})
}

type historyPageToken struct {
	AfterID int64 `json:"after_id"`
}

func (t historyPageToken) Validate() error {
	if t.AfterID <= 0 {
		return errors.New("after_id must be positive")
	}
	return nil
}

const defaultHistoryPageSize = 25

func (h handler) history(c echo.Context) error {
	ctx := c.Request().Context()

	var afterID int64
	if tkn := c.QueryParam("page_token"); tkn != "" {
		var page historyPageToken
		if err := pagination.FromToken(tkn, &page); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid page_token"})
		}
		afterID = page.AfterID
	}

	pageSize := defaultHistoryPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	records, nextID, err := h.store.ListConversions(ctx, afterID, pageSize)
	if err != nil {
		return fmt.Errorf("failed to list conversions: %w", err)
	}

	var nextToken string
	if nextID != 0 {
		nextToken, err = pagination.ToToken(historyPageToken{AfterID: nextID})
		if err != nil {
			return fmt.Errorf("failed to encode page token: %w", err)
		}
	}

	return component.HistoryPage(records, nextToken).Render(ctx, c.Response())
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
