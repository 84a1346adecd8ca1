package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcquiz/internal/loader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resource>",
	Short: "Check a question resource without running the quiz",
	Long: `Load a question resource (file, http(s) URL or "builtin"), check it
against the question schema, and report the question count. Questions that
have no correct option are listed; they are still playable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := loader.SourceFor(args[0])
		qs, err := loader.Read(cmd.Context(), src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d questions, max score %.2f\n", src.Name(), len(qs), qs.MaxScore())

		for i, q := range qs {
			if len(q.CorrectAnswers()) == 0 {
				fmt.Fprintf(out, "  question %d has no correct option: %q\n", i+1, q.Text)
			}
		}
		return nil
	},
}
