package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/analysis"
	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/figma"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/logger"
	"github.com/mj1618/uibuilder/internal/server"
	"github.com/mj1618/uibuilder/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server or the REST API",
	Long: `Start a Model Context Protocol (MCP) server that exposes generation, analysis
and inspection as tools, or the REST API used by web front ends.

Supported transports:
  stdio             Standard I/O MCP (default, for local MCP clients)
  streamable-http   Streamable HTTP MCP (for remote agents)
  http              REST API with MCP mounted at /mcp

Examples:
  uibuilder serve
  uibuilder serve --transport streamable-http --port 8080
  uibuilder serve --transport http --store-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", server.TransportStdio, "Transport: stdio, streamable-http, http")
	serveCmd.Flags().Int("port", 0, "HTTP port (default: server.port from config)")
	serveCmd.Flags().Duration("store-ttl", server.DefaultStoreTTL, "How long analyzed designs stay addressable by id (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = appConfig.Server.Port
	}
	storeTTL, _ := cmd.Flags().GetDuration("store-ttl")
	log := logger.Named("serve")

	analyzer, err := analysis.New(cmd.Context(), appConfig)
	switch {
	case errors.Is(err, errors.ErrNotConfigured):
		log.Warnw("image analysis disabled", "reason", err.Error())
		analyzer = nil
	case err != nil:
		return err
	}

	var figmaClient *figma.Client
	if appConfig.Figma.Token != "" {
		figmaClient = figma.New(appConfig.Figma.Token, figma.WithBaseURL(appConfig.Figma.BaseURL))
	}

	srv := server.New(server.Options{
		Name:      "uibuilder",
		Version:   version.Version,
		Generator: generator.New(),
		Analyzer:  analyzer,
		Figma:     figmaClient,
		StoreTTL:  storeTTL,
	})
	log.Debugw("starting", "transport", transport, "port", port, "store_ttl", storeTTL.String())
	return srv.Serve(cmd.Context(), transport, port)
}
