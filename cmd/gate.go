package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// terminalGate - asks the operator on the controlling terminal; every
// fatal exit also waits for a keypress so the reason is not lost when
// the tool runs in a window that closes on exit
type terminalGate struct {
	in  io.Reader
	out io.Writer
}

func newTerminalGate() *terminalGate {
	return &terminalGate{in: os.Stdin, out: os.Stdout}
}

func (g *terminalGate) Confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("confirmation required but stdin is not a terminal; use --yes")
	}
	fmt.Fprintf(g.out, "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(g.in).ReadString('\n')
	if err != nil {
		return false, errors.Wrap(err, "reading confirmation")
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

func (g *terminalGate) Acknowledge(message string) {
	if message != "" {
		fmt.Fprintln(g.out, message)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	fmt.Fprint(g.out, "Press [ENTER] to confirm and end the process.")
	_, _ = bufio.NewReader(g.in).ReadString('\n')
}
