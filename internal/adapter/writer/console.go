package writer

import (
	"fmt"
	"io"

	"github.com/MikeRez0/payopt/internal/core/domain"
)

const noSpendingLine = "no spending to report"

// Console prints a summary as "<method id> <amount>" lines sorted by id,
// amounts with exactly two decimals.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) WriteSummary(summary domain.Summary) error {
	if len(summary) == 0 {
		_, err := fmt.Fprintln(c.out, noSpendingLine)
		return err
	}

	for _, id := range summary.SortedIDs() {
		if _, err := fmt.Fprintf(c.out, "%s %s\n", id, domain.Cents(summary[id]).String()); err != nil {
			return fmt.Errorf("writing summary line for %s: %w", id, err)
		}
	}
	return nil
}
