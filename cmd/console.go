package cmd

import (
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the quiz in plain line-oriented mode",
	Long: `Run the quiz without the full-screen UI. Options are entered as numbers
separated by commas or spaces, e.g. "1,3". An empty line submits nothing
and asks again; after feedback, press Enter for the next question.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}
