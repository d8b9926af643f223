package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"spyglass/internal/adapters/sqlite"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded traversal sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer log.Close()

		infos, err := log.Sessions()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no recorded sessions")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%d\t%s\t%d events\t%s\n",
				info.ID, info.Label, info.Events, info.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
