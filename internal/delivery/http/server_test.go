package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"floradesk/config"
	"floradesk/internal/delivery/http/middleware"
	"floradesk/internal/delivery/http/router"
	"floradesk/internal/delivery/http/router/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testHTTPParams(t *testing.T, cfg *config.Config) HTTPParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return HTTPParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(nil),
			UserHandler:     handler.NewUserHandler(nil),
			ProductHandler:  handler.NewProductHandler(nil),
			ServiceHandler:  handler.NewServiceHandler(nil),
			OrderHandler:    handler.NewOrderHandler(nil),
			ReportHandler:   handler.NewReportHandler(nil),
			ActivityHandler: handler.NewActivityHandler(nil),
			AuthMiddleware:  middleware.NewAuthMiddleware(nil),
		},
		RequestID:       middleware.NewRequestIDMiddleware(logger),
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
	}
}

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	d, err := NewServer(testHTTPParams(t, cfg))
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, time.Minute, srv.server.Server.IdleTimeout)
}
