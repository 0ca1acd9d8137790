package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figlens/internal/adapters/figma"
	mcpadapter "figlens/internal/adapters/mcp"
	"figlens/internal/adapters/sqlite"
	"figlens/internal/config"
	"figlens/internal/ports"
)

func main() {
	tokenFlag := flag.String("token", config.Token(), "Figma personal access token")
	cacheFlag := flag.String("cache", config.CachePath(), "path to the file cache database")
	noCacheFlag := flag.Bool("no-cache", false, "fetch files directly, bypassing the cache")
	flag.Parse()

	if *tokenFlag == "" {
		log.Fatal("figlens-mcp: no access token (set FIGMA_TOKEN or pass -token)")
	}

	client := figma.NewClient(*tokenFlag)

	var source ports.FileSource = client
	if !*noCacheFlag {
		cache := sqlite.NewCache()
		if err := cache.Open(*cacheFlag); err != nil {
			log.Fatalf("figlens-mcp: %v", err)
		}
		defer cache.Close()
		source = figma.NewCachedSource(client, cache)
	}

	mcpServer := server.NewMCPServer(
		"figlens-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterAnalysisTools(mcpServer, source)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("figlens-mcp: %v", err)
	}
}
