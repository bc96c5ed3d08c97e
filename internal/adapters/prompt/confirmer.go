// Package prompt asks the user to confirm an install plan.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/samogon/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Confirmer = (*Confirmer)(nil)

const (
	defaultWidth = 80
	minWrapWidth = 20
)

// Confirmer prints the plan summary and reads a y/N answer.
// An empty answer accepts; end of input declines.
type Confirmer struct {
	in  io.Reader
	out io.Writer
}

// New creates a Confirmer reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Confirmer {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Confirmer{in: in, out: out}
}

// Confirm prints the plan and waits for an answer or ctx cancellation.
func (c *Confirmer) Confirm(ctx context.Context, plan []domain.Formula) (bool, error) {
	if len(plan) == 0 {
		return false, zerr.Wrap(domain.ErrNoPackagesSpecified, "nothing to confirm")
	}

	_, _ = fmt.Fprintf(c.out, "\n%s\n\n%s ", Summary(plan, c.out, width(c.out)), "Proceed? [Y/n]")

	answer := make(chan string, 1)
	failed := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(c.in).ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			failed <- err
			return
		}
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-failed:
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(c.out)
			return false, nil
		}
		return false, zerr.Wrap(err, "failed to read answer")
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// Summary renders "will install N packages: name of version, ..." wrapped to width.
func Summary(plan []domain.Formula, out io.Writer, width int) string {
	styles := style.New(out)

	pieces := make([]string, 0, len(plan))
	for i := range plan {
		pieces = append(pieces, fmt.Sprintf("%s of %s",
			styles.Title.Render(plan[i].Name), styles.Success.Render(plan[i].VersionString())))
	}

	header := fmt.Sprintf(" %s will install %d package(s): ", style.Arrow, len(plan))
	body := strings.Join(pieces, ", ")

	headerWidth := lipgloss.Width(header)
	wrap := width - headerWidth
	if wrap < minWrapWidth {
		return header + "\n" + styles.Faint.Width(width).Render(body)
	}

	lines := strings.Split(styles.Faint.Width(wrap).Render(body), "\n")
	indent := strings.Repeat(" ", headerWidth)
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return header + strings.Join(lines, "\n")
}

// width reports the terminal width of out, or a default when it is not a terminal.
func width(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // fd fits in int
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
