package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spyglass/internal/adapters/reflectval"
	"spyglass/internal/application"
	"spyglass/internal/config"
	"spyglass/internal/ports"
)

var (
	pageSize int
	dbPath   string
	accessor ports.Accessor
)

var rootCmd = &cobra.Command{
	Use:   "spyglass-cli",
	Short: "CLI for inspecting structured data",
	Long: `spyglass-cli walks structured data (JSON documents) through the
spyglass traversal engine and renders the resulting event stream as text.

Collections above the page size show one page per pass; traversals can be
recorded into a session database and replayed later.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		accessor = reflectval.New()
		return nil
	},
}

// GetAccessor returns the initialized accessor
func GetAccessor() ports.Accessor {
	return accessor
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&pageSize, "page-size", "p", config.PageSize(), "collection page size")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", config.DBPath(), "path to the session database")
}

// engineOptions builds the engine options shared by all subcommands
func engineOptions() []application.Option {
	return []application.Option{
		application.WithPageSize(pageSize),
		application.WithMaxPageState(config.MaxPageState()),
	}
}
