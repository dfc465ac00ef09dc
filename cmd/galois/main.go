package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sq8vps/galois-field/internal/cli"
	"github.com/sq8vps/galois-field/pkg/config"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var verbose bool

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "Finite-field arithmetic over GF(2^8) and prime fields GF(p)",
		Long: `Galois is a finite-field arithmetic toolbox.

It supports the 256-element binary extension field GF(2^8) used by
byte-oriented error-correcting codes (primitive polynomial 0x11D), and
prime fields GF(p) for any 16-bit prime characteristic. Multiplication
and division are O(1) lookups in discrete-log tables built once at
field construction.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		cli.NewEvalCommand(cfg),
		cli.NewTablesCommand(cfg),
		cli.NewPrimeCommand(),
		cli.NewVerifyCommand(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
