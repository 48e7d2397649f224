// Package uitest provides UI testing utilities using Rod.
package uitest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/corvid-labs/txt2html/internal/app"
	"github.com/corvid-labs/txt2html/internal/config"
	"github.com/corvid-labs/txt2html/internal/server"
	"github.com/corvid-labs/txt2html/internal/storage"
)

// Server is a test server that runs the preview app in dev mode against an
// in-memory Conversion Store.
type Server struct {
	baseURL string
	cancel  context.CancelFunc
	grp     *errgroup.Group
	store   storage.Store
}

// newTestServer creates and starts a new test server for use in TestUI.
// It panics on errors rather than taking a testing.TB.
func newTestServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	grp, ctx := errgroup.WithContext(ctx)

	logger := slog.New(slog.DiscardHandler)

	store, err := storage.NewDB(ctx, logger, ":memory:")
	if err != nil {
		cancel()
		panic(fmt.Sprintf("failed to create storage: %v", err))
	}

	cfg := testConfig()
	appServer := app.New(cfg, logger, store)
	appAddr, err := startAppServer(ctx, grp, appServer)
	if err != nil {
		cancel()
		_ = store.Close()
		panic(fmt.Sprintf("failed to start app server: %v", err))
	}

	return &Server{
		baseURL: "http://" + appAddr,
		cancel:  cancel,
		grp:     grp,
		store:   store,
	}
}

// BaseURL returns the base URL of the test server.
func (s *Server) BaseURL() string {
	return s.baseURL
}

// Close shuts down the test server.
// Errors are ignored since this runs during test cleanup where failures
// are typically unrecoverable and already logged by the errgroup.
func (s *Server) Close() {
	s.cancel()
	_ = s.grp.Wait()
	_ = s.store.Close()
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.LogLevel = config.LogLevelDebug
	cfg.DevMode = true
	return cfg
}

func startAppServer(ctx context.Context, grp *errgroup.Group, srv *echo.Echo) (string, error) {
	listener, err := server.Listen(ctx, "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	addr := listener.Addr().String()

	server.Serve(ctx, grp, srv.Server, listener, server.ShutdownTimeout)

	return addr, nil
}

// URL constructs a full URL from the server base URL and a path.
func (s *Server) URL(path string) string {
	return fmt.Sprintf("%s%s", s.baseURL, path)
}

// SaveDictionary saves a link dictionary directly against the test server's
// store, for tests that need a pre-seeded dictionary.
func (s *Server) SaveDictionary(ctx context.Context, name, source string) error {
	return s.store.SaveDictionary(ctx, name, source)
}
