// Package server exposes design generation and analysis as MCP tools and
// as a small REST API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mj1618/uibuilder/internal/analysis"
	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/figma"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/logger"
)

// Transports accepted by Serve.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
	TransportHTTP           = "http"
)

// DefaultStoreTTL is how long analyzed designs stay addressable by id.
const DefaultStoreTTL = 30 * time.Minute

// Options configures a Server. Analyzer and Figma are optional; tools and
// routes that need them report that they are not configured.
type Options struct {
	Name      string
	Version   string
	Generator *generator.Generator
	Analyzer  analysis.Analyzer
	Figma     *figma.Client
	StoreTTL  time.Duration
}

// Server holds the shared state behind the MCP tools and REST routes.
type Server struct {
	gen      *generator.Generator
	analyzer analysis.Analyzer
	figma    *figma.Client
	store    *DesignStore
	log      *zap.SugaredLogger
	mcp      *mcpserver.MCPServer
}

// New creates a server and registers its tools.
func New(opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "uibuilder"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Generator == nil {
		opts.Generator = generator.New()
	}
	s := &Server{
		gen:      opts.Generator,
		analyzer: opts.Analyzer,
		figma:    opts.Figma,
		store:    NewDesignStore(opts.StoreTTL),
		log:      logger.Named("server"),
	}
	s.mcp = mcpserver.NewMCPServer(opts.Name, opts.Version, mcpserver.WithToolCapabilities(false))
	s.registerTools()
	return s
}

// Store returns the design store shared by tools and routes.
func (s *Server) Store() *DesignStore { return s.store }

// Serve runs the server on the given transport until ctx is done (http)
// or the transport closes (stdio, streamable-http).
func (s *Server) Serve(ctx context.Context, transport string, port int) error {
	addr := fmt.Sprintf(":%d", port)
	switch transport {
	case TransportStdio:
		return mcpserver.ServeStdio(s.mcp)
	case TransportStreamableHTTP:
		s.log.Infow("serving mcp", "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	case TransportHTTP:
		return s.ListenAndServe(ctx, addr)
	default:
		return errors.WithHint(
			errors.Newf("unsupported transport: %s", transport),
			"use stdio, streamable-http or http")
	}
}

// ListenAndServe serves the REST API, with MCP mounted at /mcp, and shuts
// down gracefully when ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("serving http", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerTools() {
	designArgs := []mcp.ToolOption{
		mcp.WithString("design", mcp.Description("Design document: an element array, an analysis result or a ui-design export, as JSON or YAML")),
		mcp.WithString("design_id", mcp.Description("Id of a design returned by analyze (alternative to design)")),
	}
	withDesign := func(opts ...mcp.ToolOption) []mcp.ToolOption {
		return append(append([]mcp.ToolOption{}, designArgs...), opts...)
	}

	// generate
	s.mcp.AddTool(
		mcp.NewTool("generate", withDesign(
			mcp.WithDescription("Generate framework code or interchange JSON from a design element tree"),
			mcp.WithString("framework", mcp.Description("Target framework"), mcp.Required(),
				mcp.Enum("react", "angular", "flutter", "html")),
			mcp.WithString("output_format", mcp.Description("code (default) or json"), mcp.Enum("code", "json")),
			mcp.WithString("component_name", mcp.Description("Component or widget name")),
		)...),
		s.handleGenerate,
	)

	// generate_all
	s.mcp.AddTool(
		mcp.NewTool("generate_all", withDesign(
			mcp.WithDescription("Generate output for every supported framework at once"),
			mcp.WithString("output_format", mcp.Description("code (default) or json"), mcp.Enum("code", "json")),
			mcp.WithString("component_name", mcp.Description("Component or widget name")),
		)...),
		s.handleGenerateAll,
	)

	// analyze
	s.mcp.AddTool(
		mcp.NewTool("analyze",
			mcp.WithDescription("Extract a design element tree from a UI image. The result carries a design_id usable by the other tools."),
			mcp.WithString("image", mcp.Description("Image as a data URL or an http(s) URL"), mcp.Required()),
			mcp.WithString("description", mcp.Description("Optional context about the design")),
		),
		s.handleAnalyze,
	)

	// inspect
	s.mcp.AddTool(
		mcp.NewTool("inspect", withDesign(
			mcp.WithDescription("List every element of a design with its path, bounds and args"),
			mcp.WithArray("types", mcp.Description("Only keep these element types"), mcp.Items(map[string]any{"type": "string"})),
			mcp.WithString("text", mcp.Description("Only keep elements whose text or name contains this")),
		)...),
		s.handleInspect,
	)

	// tailwind_classes
	s.mcp.AddTool(
		mcp.NewTool("tailwind_classes", withDesign(
			mcp.WithDescription("Show the Tailwind classes the Angular generator assigns to each element"),
		)...),
		s.handleTailwindClasses,
	)

	// frameworks
	s.mcp.AddTool(
		mcp.NewTool("frameworks",
			mcp.WithDescription("List supported frameworks with their languages and file names"),
		),
		s.handleFrameworks,
	)
}
