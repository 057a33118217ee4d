package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for drills.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	limiter *rate.Limiter
}

// NewServer creates a new MCP server with the given ports.
// Tool calls are throttled using the MCP settings, or the defaults when no
// settings service is wired.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "drills",
		Version: Version,
	}

	limits := domain.DefaultAppSettings().MCP
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil && settings != nil && settings.MCP.IsValid() {
			limits = settings.MCP
		}
	}

	s := &Server{
		ports:   ports,
		server:  mcp.NewServer(impl, nil),
		limiter: rate.NewLimiter(rate.Limit(limits.RateLimit), limits.Burst),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// SetRateLimit changes the tool call throttle. Invalid values are ignored.
func (s *Server) SetRateLimit(perSecond float64, burst int) {
	if perSecond <= 0 || burst <= 0 {
		logger.Warn("ignoring invalid MCP rate limit %g/%d", perSecond, burst)
		return
	}
	s.limiter.SetLimit(rate.Limit(perSecond))
	s.limiter.SetBurst(burst)
	logger.Debug("MCP rate limit set to %g/s, burst %d", perSecond, burst)
}

// ReloadSettings re-reads the MCP settings and applies the rate limit.
func (s *Server) ReloadSettings() {
	if s.ports.Settings == nil {
		return
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		logger.Warn("reloading MCP settings: %v", err)
		return
	}
	if settings == nil {
		return
	}
	s.SetRateLimit(settings.MCP.RateLimit, settings.MCP.Burst)
}

// throttle blocks until a tool call may proceed.
func (s *Server) throttle(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
