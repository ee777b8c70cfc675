// Package cli implements the gqldoc command line.
package cli

import (
	"io"
	stdlog "log"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/vvakame/gqldoc/internal/log"
)

// Config holds everything the commands read from flags.
type Config struct {
	JSON          bool
	Verbosity     int
	VariablesFile string
	OperationKind string
}

// NewRootCommand builds the gqldoc command tree. Results go to out, logs to stderr.
func NewRootCommand(out io.Writer) *cobra.Command {
	cfg := &Config{}

	rootCmd := &cobra.Command{
		Use:   "gqldoc",
		Short: "gqldoc inspects parsed GraphQL documents",
		Long: heredoc.Doc(`
			gqldoc reports the shape of GraphQL query documents: the operation or fragment
			they carry, the fragments they define, and the plain values of field arguments
			with variables substituted.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			stdr.SetVerbosity(cfg.Verbosity)
			logger := stdr.New(stdlog.New(cmd.ErrOrStderr(), "", stdlog.LstdFlags)).WithName("gqldoc")
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().BoolVar(&cfg.JSON, "json", false, "output JSON instead of YAML")
	rootCmd.PersistentFlags().IntVarP(&cfg.Verbosity, "verbosity", "v", 0, "log verbosity")

	rootCmd.AddCommand(
		newMainCommand(cfg),
		newOperationCommand(cfg),
		newFragmentsCommand(cfg),
		newMergeCommand(cfg),
		newArgsCommand(cfg),
	)

	return rootCmd
}
