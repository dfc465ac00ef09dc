package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sq8vps/galois-field/pkg/config"
)

// TableDump is the JSON shape of a field's lookup tables.
type TableDump struct {
	Field          string   `json:"field"`
	Characteristic uint16   `json:"characteristic"`
	Exp            []uint16 `json:"exp"`
	Log            []uint16 `json:"log"`
}

func NewTablesCommand(cfg *config.Config) *cobra.Command {
	var (
		fieldKind      string
		characteristic uint16
		outputJSON     bool
		hexOut         bool
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Dump the exponent and logarithm tables of a field",
		Long: `Build a field and print its antilog (exponent) and discrete-log
tables. The exponent table maps e to generator^e; the logarithm table
maps a nonzero element back to its exponent.`,
		Example: `  # GF(2^8) tables
  galois tables

  # GF(257) tables as JSON
  galois tables --field gfp --char 257 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newField(fieldKind, characteristic)
			if err != nil {
				return err
			}
			char := f.Characteristic()

			log.WithFields(log.Fields{
				"field":          fieldKind,
				"characteristic": char,
			}).Debug("dumping tables")

			// Exponents cover the group order; index 0 of the log
			// table is skipped because log(0) is undefined.
			exp := make([]uint16, char-1)
			for e := uint16(0); e < char-1; e++ {
				exp[e] = f.Exp(e)
			}
			logs := make([]uint16, 0, char-1)
			for v := uint16(1); v < char; v++ {
				logs = append(logs, f.Log(v))
			}

			if outputJSON {
				out, err := json.MarshalIndent(TableDump{
					Field:          fieldKind,
					Characteristic: char,
					Exp:            exp,
					Log:            logs,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode tables: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			header := color.New(color.FgYellow, color.Bold)

			header.Fprintf(cmd.OutOrStdout(), "exp (e -> g^e), characteristic %d:\n", char)
			for e, v := range exp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ", formatElement(v, char, hexOut))
				if (e+1)%16 == 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			fmt.Fprintln(cmd.OutOrStdout())

			header.Fprintln(cmd.OutOrStdout(), "log (v -> e), v from 1:")
			for i, v := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ", formatElement(v, char, hexOut))
				if (i+1)%16 == 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			fmt.Fprintln(cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldKind, "field", "f", cfg.Defaults.Field, "field variant (gf256, gfp, legacy)")
	cmd.Flags().Uint16VarP(&characteristic, "char", "c", cfg.Defaults.Characteristic, "field characteristic (prime variants)")
	cmd.Flags().BoolVar(&outputJSON, "json", cfg.UI.JSON, "output as JSON")
	cmd.Flags().BoolVar(&hexOut, "hex", cfg.Defaults.Hex, "print elements in hex")

	return cmd
}
