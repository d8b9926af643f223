package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"spyglass/internal/adapters/jsonsource"
	"spyglass/internal/adapters/textrender"
	"spyglass/internal/application/commands"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.json>",
	Short: "Traverse a JSON file and print its value tree",
	Long: `Traverse a JSON file and print the resulting event stream as an
indented value tree.

Collections larger than the page size show only their first page.

Examples:
  spyglass-cli dump config.json
  spyglass-cli dump --page-size 10 data.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ctx := context.Background()

		root, err := jsonsource.Load(path)
		if err != nil {
			return err
		}

		dump := commands.NewDumpCommand(GetAccessor(), path, root, engineOptions()...)
		result, err := dump.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(textrender.RenderEvents(result.Events))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
