package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"tunesort/internal/organizer"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// statusGap is the dot run printed even for the longest filename.
const statusGap = 10

// Reporter writes aligned per-file status lines.
type Reporter struct {
	out      io.Writer
	colorize bool
}

// New constructs a Reporter. Color is enabled only when out is a terminal.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out, colorize: shouldColorize(out)}
}

// DisplayName is the filename shown for a source path.
func DisplayName(path string) string {
	return filepath.Base(path)
}

// LongestName returns the display-name rune length of the widest entry in
// files, used to align every status line in the batch.
func LongestName(files []string) int {
	longest := 1
	for _, file := range files {
		if n := utf8.RuneCountInString(DisplayName(file)); n > longest {
			longest = n
		}
	}
	return longest
}

// Print renders one outcome: the dotted status line, indented continuation
// lines for any further errors, and an advisory line for a removal warning.
func (r *Reporter) Print(name string, longest int, outcome organizer.Outcome) {
	width := utf8.RuneCountInString(name)
	dots := strings.Repeat(".", longest-width+statusGap)

	if outcome.OK() {
		fmt.Fprintf(r.out, "%s%s%s\n", name, dots, r.paint("Ok", ansiGreen))
	} else {
		fmt.Fprintf(r.out, "%s%s%s\n", name, dots, r.paint(outcome.Errors[0].Error(), ansiRed))
		indent := strings.Repeat(" ", width+len(dots))
		for _, err := range outcome.Errors[1:] {
			fmt.Fprintf(r.out, "%s%s\n", indent, r.paint(err.Error(), ansiRed))
		}
	}

	if outcome.RemovalWarning != nil {
		fmt.Fprintf(r.out, "%s original file was not removed: %v\n",
			r.paint("Warning!", ansiYellow), outcome.RemovalWarning)
	}
}

func (r *Reporter) paint(text, color string) string {
	if !r.colorize {
		return text
	}
	return color + text + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
