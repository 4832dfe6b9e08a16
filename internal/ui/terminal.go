// Package ui owns every interactive and decorative concern of a run: the
// banner, the license notice, the consent gate, and the input path prompt.
// The pipeline itself never reads stdin or styles output.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsentPhrase is the exact, case-sensitive phrase the user must type to
// authorize a run.
const ConsentPhrase = "I AGREE"

type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer

	info    *color.Color
	warn    *color.Color
	errc    *color.Color
	heading *color.Color
}

func NewTerminal() *Terminal {
	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
	return &Terminal{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		err:     os.Stderr,
		info:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		errc:    color.New(color.FgRed),
		heading: color.New(color.FgCyan, color.Bold),
	}
}

func (t *Terminal) Banner(version string) {
	banner := `
     _       _           _ _
  __| |_   _| |__   __ _| (_) __ _ _ __
 / _` + "`" + ` | | | | '_ \ / _` + "`" + ` | | |/ _` + "`" + ` | '_ \
| (_| | |_| | |_) | (_| | | | (_| | | | |
 \__,_|\__,_|_.__/ \__,_|_|_|\__, |_| |_|
                             |___/
`
	t.errc.Fprint(t.out, banner)
	t.heading.Fprintf(t.out, "Version %s | Spanish -> English aligned dubbing\n\n", version)
}

func (t *Terminal) ShowLicense() {
	t.heading.Fprintln(t.out, "=== Proprietary License ===")
	fmt.Fprint(t.out, LicenseText+"\n")
	t.heading.Fprintln(t.out, "=== End License ===")
	fmt.Fprintln(t.out)
}

// ConfirmAuthorization runs the consent gate. It returns true only when the
// user types the exact consent phrase.
func (t *Terminal) ConfirmAuthorization() (bool, error) {
	t.warn.Fprintln(t.out, "To continue, confirm you are authorized to run this proprietary software.")
	fmt.Fprintf(t.out, "Type '%s' to continue (case-sensitive): ", ConsentPhrase)
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.TrimSpace(line) == ConsentPhrase, nil
}

// InputPath obtains the source audio path: a readable path on the clipboard
// wins, otherwise the user is prompted. Surrounding quotes are stripped the
// way shells paste them.
func (t *Terminal) InputPath() (string, error) {
	if clip, err := clipboard.ReadAll(); err == nil {
		if p := cleanPath(clip); p != "" && fileExists(p) {
			t.Infof("using audio path from clipboard: %s", p)
			return p, nil
		}
	}

	fmt.Fprint(t.out, "Enter the path to your Spanish audio file: ")
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	p := cleanPath(line)
	if p == "" {
		return "", errors.New("no input path provided")
	}
	if !fileExists(p) {
		return "", fmt.Errorf("file not found: %s", p)
	}
	return p, nil
}

func (t *Terminal) Infof(format string, args ...any) {
	t.info.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) Warnf(format string, args ...any) {
	t.warn.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) Errorf(format string, args ...any) {
	t.errc.Fprintf(t.err, format+"\n", args...)
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
