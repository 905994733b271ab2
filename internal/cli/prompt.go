package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"github.com/danieljhkim/mcport/internal/engine"
)

// newConfirmer picks how the run asks for permission: --yes answers for the
// operator, a terminal gets an interactive prompt, anything else is read as a
// plain line.
func newConfirmer(assumeYes bool, in io.Reader, out io.Writer) engine.Confirmer {
	if assumeYes {
		return autoConfirmer{}
	}
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		if o, ok := out.(*os.File); ok && isTerminal(o) {
			return &terminalConfirmer{in: f, out: o}
		}
	}
	return &lineConfirmer{in: bufio.NewReader(in), out: out}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// autoConfirmer always says yes.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(string) (bool, error) {
	return true, nil
}

// terminalConfirmer shows a promptui y/N prompt.
type terminalConfirmer struct {
	in  *os.File
	out *os.File
}

func (t *terminalConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintln(t.out)
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Stdin:     t.in,
		Stdout:    t.out,
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, nil
	default:
		return false, fmt.Errorf("prompt failed: %w", err)
	}
}

// lineConfirmer reads one line and accepts "y" or "yes" in any case.
type lineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (l *lineConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(l.out, "\n%s [y/N] ", prompt)

	line, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
