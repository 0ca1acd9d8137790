package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"figlens/internal/adapters/figma"
	"figlens/internal/adapters/sqlite"
	"figlens/internal/config"
	"figlens/internal/ports"
)

var (
	token     string
	cachePath string
	noCache   bool

	source ports.FileSource
	cache  *sqlite.Cache
)

var rootCmd = &cobra.Command{
	Use:   "figlens-cli",
	Short: "CLI for analyzing Figma design files",
	Long: `figlens-cli inspects Figma design files through the REST API and
reports on their contents.

It provides commands to extract color palettes, classify UI elements,
count component usage, and summarize per-view statistics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if token == "" {
			return fmt.Errorf("no access token (set FIGMA_TOKEN or pass --token)")
		}
		client := figma.NewClient(token)
		if noCache {
			source = client
			return nil
		}
		cache = sqlite.NewCache()
		if err := cache.Open(cachePath); err != nil {
			return err
		}
		source = figma.NewCachedSource(client, cache)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cache != nil {
			cache.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", config.Token(), "Figma personal access token")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", config.CachePath(), "path to the file cache database")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "fetch files directly, bypassing the cache")
}

// GetSource returns the initialized file source
func GetSource() ports.FileSource {
	return source
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
