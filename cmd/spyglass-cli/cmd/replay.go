package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spyglass/internal/adapters/sqlite"
	"spyglass/internal/adapters/textrender"
	"spyglass/internal/application/commands"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Render a recorded session's event stream",
	Long: `Render a recorded session's event stream as an indented value
tree, exactly as it was captured.

Examples:
  spyglass-cli replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session id: %s", args[0])
		}
		ctx := context.Background()

		log, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer log.Close()

		replay := commands.NewReplayCommand(log, sessionID)
		result, err := replay.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(textrender.RenderEvents(result.Events))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
