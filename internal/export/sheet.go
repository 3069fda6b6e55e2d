package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/strategiq/scoreboard/internal/questionlog"
)

// Header is the first line of every exported sheet.
const Header = "Log ID,Round,Team,Points,Timestamp"

// timestampLayout matches ISO-8601 UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// WriteSheet writes entries as CSV rows in the order given. Team names are
// always quoted with embedded quotes doubled; a missing timestamp is left empty.
func WriteSheet(w io.Writer, entries []questionlog.Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("writing sheet header: %w", err)
	}

	for _, e := range entries {
		_, err := fmt.Fprintf(bw, "%d,%s,%s,%d,%s\n",
			e.ID,
			e.DisplayRound(),
			quote(e.Team),
			e.Points,
			formatTime(e.Time),
		)
		if err != nil {
			return fmt.Errorf("writing sheet row %d: %w", e.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
