package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/sq8vps/galois-field/internal/validation"
	"github.com/sq8vps/galois-field/pkg/field"
)

var stdin = bufio.NewReader(os.Stdin)

// readElement reads one field element from stdin, prompting only when
// stdin is an interactive terminal.
func readElement(prompt string, characteristic uint16) (uint16, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print(prompt)
	}

	line, err := stdin.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("failed to read element: %w", err)
	}

	return validation.ParseElement(strings.TrimSpace(line), characteristic)
}

// newField constructs the field selected by the --field/--char flags.
func newField(kind string, characteristic uint16) (field.Field, error) {
	f, err := field.New(field.Kind(kind), characteristic)
	if err != nil {
		return nil, fmt.Errorf("failed to construct field: %w", err)
	}
	return f, nil
}

// formatElement renders an element in the configured base. Hex output
// is zero-padded to the field's digit width.
func formatElement(v, characteristic uint16, hex bool) string {
	if !hex {
		return fmt.Sprintf("%d", v)
	}
	if characteristic <= 256 {
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprintf("0x%04X", v)
}
