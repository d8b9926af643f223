package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"spyglass/internal/adapters/textrender"
	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// RegisterInspectTools adds the inspection tools to the MCP server.
func RegisterInspectTools(s *server.MCPServer, svc *Service) {
	s.AddTool(inspectTool(), inspectHandler(svc))
	s.AddTool(collectionsTool(), collectionsHandler(svc))
	s.AddTool(setPageTool(), setPageHandler(svc))
}

// RegisterSessionTools adds the recorded-session tools. Only registered
// when a session log is configured.
func RegisterSessionTools(s *server.MCPServer, log ports.SessionLog) {
	s.AddTool(sessionsTool(), sessionsHandler(log))
	s.AddTool(replayTool(), replayHandler(log))
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Traverse a JSON file and return its value tree as indented text. Collections larger than the page size show only the selected page; use set_page to move."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the JSON file to inspect."),
		),
	)
}

func inspectHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("file", "")
		if path == "" {
			return toolError(fmt.Errorf("file is required"))
		}
		if err := svc.inspect(path); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(textrender.RenderEvents(svc.capture.Events)), nil
	}
}

// --- collections ---

func collectionsTool() mcp.Tool {
	return mcp.NewTool("collections",
		mcp.WithDescription("List the paginated collections of a JSON file with their keys and current page. Keys feed set_page."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the JSON file to inspect."),
		),
	)
}

func collectionsHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("file", "")
		if path == "" {
			return toolError(fmt.Errorf("file is required"))
		}
		if err := svc.inspect(path); err != nil {
			return toolError(err)
		}

		var b strings.Builder
		for _, ev := range svc.capture.Events {
			if pc, ok := ev.(domain.PageControl); ok {
				fmt.Fprintf(&b, "%s\tpage %d of %d\n", pc.Key, pc.Page+1, pc.MaxPage+1)
			}
		}
		if b.Len() == 0 {
			return mcp.NewToolResultText("no paginated collections"), nil
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- set_page ---

func setPageTool() mcp.Tool {
	return mcp.NewTool("set_page",
		mcp.WithDescription("Select the visible page of a paginated collection. The selection is clamped into the valid range and applies to the next inspect."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Collection key as reported by collections or inspect."),
		),
		mcp.WithNumber("page",
			mcp.Required(),
			mcp.Description("Zero-based page index."),
		),
	)
}

func setPageHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key := req.GetString("key", "")
		page := req.GetInt("page", 0)
		if err := svc.setPage(key, page); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("page set for %s", key)), nil
	}
}

// --- sessions ---

func sessionsTool() mcp.Tool {
	return mcp.NewTool("sessions",
		mcp.WithDescription("List recorded traversal sessions, newest first."),
	)
}

func sessionsHandler(log ports.SessionLog) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		infos, err := log.Sessions()
		if err != nil {
			return toolError(err)
		}
		if len(infos) == 0 {
			return mcp.NewToolResultText("no recorded sessions"), nil
		}
		var b strings.Builder
		for _, info := range infos {
			fmt.Fprintf(&b, "%d\t%s\t%d events\t%s\n",
				info.ID, info.Label, info.Events, info.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- replay ---

func replayTool() mcp.Tool {
	return mcp.NewTool("replay",
		mcp.WithDescription("Render a recorded session's event stream as indented text."),
		mcp.WithNumber("session",
			mcp.Required(),
			mcp.Description("Session ID as reported by sessions."),
		),
	)
}

func replayHandler(log ports.SessionLog) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetInt("session", 0)
		events, err := log.Replay(int64(id))
		if err != nil {
			return toolError(err)
		}
		if len(events) == 0 {
			return toolError(fmt.Errorf("session %d not found or empty", id))
		}
		return mcp.NewToolResultText(textrender.RenderEvents(events)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
