package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "spyglass/internal/adapters/mcp"
	"spyglass/internal/adapters/reflectval"
	"spyglass/internal/adapters/sqlite"
	"spyglass/internal/application"
	"spyglass/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the session database (empty to disable session tools)")
	pageFlag := flag.Int("page-size", config.PageSize(), "collection page size")
	flag.Parse()

	svc := mcpadapter.NewService(
		reflectval.New(),
		application.WithPageSize(*pageFlag),
		application.WithMaxPageState(config.MaxPageState()),
	)

	mcpServer := server.NewMCPServer(
		"spyglass-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterInspectTools(mcpServer, svc)

	if *dbFlag != "" {
		sessions, err := sqlite.Open(*dbFlag)
		if err != nil {
			log.Fatalf("spyglass-mcp: %v", err)
		}
		defer sessions.Close()
		mcpadapter.RegisterSessionTools(mcpServer, sessions)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("spyglass-mcp: %v", err)
	}
}
