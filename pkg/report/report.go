package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/travigo/trainsim/pkg/simulator"
)

func Format(summary simulator.Summary) string {
	line := fmt.Sprintf(
		"Train %d on %s line is at station %s heading in %s direction.",
		summary.ID,
		strings.ToUpper(summary.Colour),
		strings.ToUpper(summary.Station),
		summary.Direction,
	)

	if summary.Delayed {
		line += " (DELAY)"
	}

	return line
}

func Write(w io.Writer, summaries []simulator.Summary) error {
	for _, summary := range summaries {
		if _, err := fmt.Fprintln(w, Format(summary)); err != nil {
			return err
		}
	}

	return nil
}
