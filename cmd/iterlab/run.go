package main

import (
	"os"
	"strings"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive method menu",
	Long:  `Shows the method menu (False Position, Jacobi) and prompts for each parameter, with the classroom samples as defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		charts, _ := cmd.Flags().GetBool("charts")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		printer, err := newPrinter(cmd, cli.FormatMarkdown, charts)
		if err != nil {
			return err
		}

		interactive := false
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			interactive = cli.IsTerminal(f)
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		session := &cli.Session{
			Lab:     a.lab,
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
			Printer: printer,
			Banner:  interactive && !noBanner,
			Version: strings.TrimSpace(iterlab.Version),
		}
		return cli.HandleExecutionError(session.Run(ctx))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("charts", false, "Append a Mermaid convergence chart to each result")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
