package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/txt2html/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewDB(context.Background(), slog.New(slog.DiscardHandler), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHandlerConvertReturnsHTML(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := handler{store: newTestStore(t)}

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"text":"Hello world.\n"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.convert(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello world.")
}

func TestHandlerConvertRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := handler{store: newTestStore(t)}

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.convert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerConvertUnknownDictionaryReturns404(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := handler{store: newTestStore(t)}

	req := httptest.NewRequest(http.MethodPost, "/convert",
		strings.NewReader(`{"text":"hi","options":{"dictionary_name":"missing"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.convert(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerHistoryListsRecordedConversions(t *testing.T) {
	t.Parallel()

	e := echo.New()
	store := newTestStore(t)
	h := handler{store: store}

	convReq := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"text":"hi"}`))
	convReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	convRec := httptest.NewRecorder()
	require.NoError(t, h.convert(e.NewContext(convReq, convRec)))
	require.Equal(t, http.StatusOK, convRec.Code)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.history(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bytes in")
}
