package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sq8vps/galois-field/internal/validation"
	"github.com/sq8vps/galois-field/pkg/field/gfp"
)

func NewPrimeCommand() *cobra.Command {
	var below bool

	cmd := &cobra.Command{
		Use:   "prime <n>",
		Short: "Check primality or find the largest prime below a bound",
		Example: `  # Is 257 prime?
  galois prime 257

  # Largest prime below 256
  galois prime 256 --below`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := validation.ParseCharacteristic(args[0])
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			red := color.New(color.FgRed, color.Bold)

			if below {
				p, ok := gfp.LargestPrimeBelow(n)
				if !ok {
					return fmt.Errorf("no prime below %d", n)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "largest prime below %d: ", n)
				green.Fprintf(cmd.OutOrStdout(), "%d\n", p)
				return nil
			}

			if gfp.IsPrime(n) {
				green.Fprintf(cmd.OutOrStdout(), "✓ %d is prime\n", n)
			} else {
				red.Fprintf(cmd.OutOrStdout(), "✗ %d is not prime\n", n)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&below, "below", false, "find the largest prime below n instead of testing n")

	return cmd
}
