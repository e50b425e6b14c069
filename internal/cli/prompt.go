package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/crab-sh/crab/internal/output"
)

// prompter drives interactive input. All prompt text goes to stderr so
// stdout stays clean for piping; EOF or a read failure during any prompt
// is a user cancellation, never a data error.
type prompter struct {
	reader  *bufio.Reader
	noInput bool
}

func newPrompter(g *Globals) *prompter {
	return &prompter{
		reader:  bufio.NewReader(os.Stdin),
		noInput: g.NoInput,
	}
}

func (p *prompter) failIfNoInput(label string) error {
	if p.noInput {
		return output.NewCLIError(output.ExitUsage,
			fmt.Sprintf("Interactive input required for %q but --no-input is set", label))
	}
	return nil
}

// line prompts for a text value. An empty answer takes the default;
// with no default, the raw (possibly empty) answer comes back.
func (p *prompter) line(label, def string) (string, error) {
	if err := p.failIfNoInput(label); err != nil {
		return "", err
	}

	if def != "" {
		fmt.Fprintf(os.Stderr, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(os.Stderr, "%s: ", label)
	}

	answer, err := p.reader.ReadString('\n')
	if err != nil {
		return "", output.Cancelled()
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// confirm asks a yes/no question.
func (p *prompter) confirm(label string, def bool) (bool, error) {
	if err := p.failIfNoInput(label); err != nil {
		return false, err
	}

	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(os.Stderr, "%s [%s]: ", label, hint)

	answer, err := p.reader.ReadString('\n')
	if err != nil {
		return false, output.Cancelled()
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	case "":
		return def, nil
	default:
		return false, nil
	}
}

// password prompts for a secret twice without echo and loops until both
// answers match. Falls back to a visible line read when stdin is not a
// terminal (pipes, tests).
func (p *prompter) password(label string) (string, error) {
	if err := p.failIfNoInput(label); err != nil {
		return "", err
	}

	for {
		first, err := p.readSecret(label)
		if err != nil {
			return "", err
		}
		second, err := p.readSecret("Confirm " + label)
		if err != nil {
			return "", err
		}
		if first == second {
			return first, nil
		}
		fmt.Fprintln(os.Stderr, "Secrets don't match")
	}
}

func (p *prompter) readSecret(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", output.Cancelled()
		}
		return string(secret), nil
	}

	answer, err := p.reader.ReadString('\n')
	if err != nil {
		return "", output.Cancelled()
	}
	return strings.TrimRight(answer, "\r\n"), nil
}
