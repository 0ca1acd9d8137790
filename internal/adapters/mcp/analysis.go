package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figlens/internal/application"
	"figlens/internal/application/commands"
	"figlens/internal/domain"
	"figlens/internal/ports"
)

// RegisterAnalysisTools adds all read-only file analysis tools to the MCP server.
func RegisterAnalysisTools(s *server.MCPServer, source ports.FileSource) {
	s.AddTool(paletteTool(), paletteHandler(source))
	s.AddTool(uiTool(), uiHandler(source))
	s.AddTool(statsTool(), statsHandler(source))
	s.AddTool(usageTool(), usageHandler(source))
	s.AddTool(inventoryTool(), inventoryHandler(source))
	s.AddTool(imagesTool(), imagesHandler(source))
}

// --- get_palette ---

func paletteTool() mcp.Tool {
	return mcp.NewTool("get_palette",
		mcp.WithDescription("Extract the color palette of a design file: global top colors, per-page palettes, per-view top-8, and named fill styles."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL (the segment after /design/)"),
			mcp.Required(),
		),
	)
}

func paletteHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		report, err := commands.NewPaletteCommand(source, fileKey).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(report)
	}
}

// --- find_ui_elements ---

func uiTool() mcp.Tool {
	return mcp.NewTool("find_ui_elements",
		mcp.WithDescription("Find UI-like elements (buttons, inputs, cards) in a design file using name and structural heuristics. Best-effort: results may miss or over-report elements."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Restrict to one kind: button, input, or card. Omit for all."),
		),
	)
}

func uiHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		kind := strings.ToLower(req.GetString("kind", ""))
		switch kind {
		case "", "button", "input", "card":
		default:
			return toolError(fmt.Errorf("invalid kind %q (expected button, input, or card)", kind))
		}

		report, err := commands.NewUICommand(source, fileKey).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if kind != "" {
			filterUIReport(report, domain.Kind(kind))
		}
		return jsonResult(report)
	}
}

// filterUIReport blanks the groups the caller did not ask for.
func filterUIReport(report *application.UIReport, kind domain.Kind) {
	for i := range report.Pages {
		ui := &report.Pages[i].UI
		if kind != domain.KindButton {
			ui.Buttons = []application.UIElement{}
		}
		if kind != domain.KindInput {
			ui.Inputs = []application.UIElement{}
		}
		if kind != domain.KindCard {
			ui.Cards = []application.UIElement{}
		}
	}
}

// --- get_page_stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("get_page_stats",
		mcp.WithDescription("Per-page, per-view node statistics: total nodes, text nodes, vectors, component instances, and image fills."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL"),
			mcp.Required(),
		),
	)
}

func statsHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		report, err := commands.NewStatsCommand(source, fileKey).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(report)
	}
}

// --- get_component_usage ---

func usageTool() mcp.Tool {
	return mcp.NewTool("get_component_usage",
		mcp.WithDescription("Count component instances per page, resolved against the file's component dictionary, sorted by usage."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL"),
			mcp.Required(),
		),
	)
}

func usageHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		report, err := commands.NewUsageCommand(source, fileKey).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(report)
	}
}

// --- get_file_inventory ---

func inventoryTool() mcp.Tool {
	return mcp.NewTool("get_file_inventory",
		mcp.WithDescription("Inventory of reusable assets: components (with instance counts), component sets, and shared styles."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL"),
			mcp.Required(),
		),
	)
}

func inventoryHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		report, err := commands.NewInventoryCommand(source, fileKey).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(report)
	}
}

// --- export_images ---

func imagesTool() mcp.Tool {
	return mcp.NewTool("export_images",
		mcp.WithDescription("Resolve export image URLs for specific nodes. Returns URLs only; nothing is downloaded."),
		mcp.WithString("file_key",
			mcp.Description("File key from the share URL"),
			mcp.Required(),
		),
		mcp.WithString("node_ids",
			mcp.Description("Comma-separated node IDs (e.g. 1:2,1:3)"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Image format: png, jpg, svg, or pdf (default png)"),
		),
		mcp.WithNumber("scale",
			mcp.Description("Render scale for raster formats (default 1)"),
		),
	)
}

func imagesHandler(source ports.FileSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fileKey := req.GetString("file_key", "")
		rawIDs := req.GetString("node_ids", "")
		if rawIDs == "" {
			return toolError(fmt.Errorf("node_ids is required"))
		}
		var ids []string
		for _, id := range strings.Split(rawIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}

		cmd := commands.NewExportImagesCommand(source, fileKey, ids)
		if format := req.GetString("format", ""); format != "" {
			cmd.Format = format
		}
		if scale := req.GetFloat("scale", 0); scale > 0 {
			cmd.Scale = scale
		}

		export, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(export)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}
