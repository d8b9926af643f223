package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"spyglass/internal/adapters/jsonsource"
	"spyglass/internal/adapters/sqlite"
	"spyglass/internal/application/commands"
)

var recordCmd = &cobra.Command{
	Use:   "record <file.json>",
	Short: "Traverse a JSON file and record the event stream",
	Long: `Traverse a JSON file and record the full event stream as a new
session in the session database, for later replay or comparison.

Examples:
  spyglass-cli record data.json
  spyglass-cli record --db ./sessions.db data.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ctx := context.Background()

		root, err := jsonsource.Load(path)
		if err != nil {
			return err
		}

		log, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer log.Close()

		record := commands.NewRecordCommand(GetAccessor(), log, path, root, engineOptions()...)
		result, err := record.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
