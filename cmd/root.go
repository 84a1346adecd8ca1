package cmd

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mcquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mcquiz",
	Short: "Multiple-answer quiz runner",
	Long: `mcquiz presents a shuffled set of multiple-answer questions and scores each
submission: +0.25 for every correct option picked, -0.25 for every wrong one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog complains unless the Go flag set reports as parsed.
		return flag.CommandLine.Parse(nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	defer glog.Flush()
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
