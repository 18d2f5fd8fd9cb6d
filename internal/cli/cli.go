package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"familytree/internal/core"
	"familytree/internal/loader"
)

// Fixed prompt texts.
const (
	Prompt         = "> "
	MsgUnknown     = "Unknown command."
	MsgWrongAmount = "Wrong amount of parameters."
	MsgWrongType   = "Wrong type of parameters."
)

const tokenSeparator = ' '

// Cli reads commands line by line and prints query results.
type Cli struct {
	svc    *core.Service
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// New returns a prompt reading from in and writing to out.
func New(svc *core.Service, in io.Reader, out io.Writer) *Cli {
	return &Cli{svc: svc, in: bufio.NewReader(in), out: out, logger: svc.Logger()}
}

// Tokenize splits a command line on spaces. Runs of spaces collapse and
// double quotes group a token containing spaces.
func Tokenize(line string) []string {
	parts := loader.Split(line, tokenSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExecPrompt prints the prompt, reads one line and executes it. It returns
// false once a quit command is read or input is exhausted.
func (c *Cli) ExecPrompt() (bool, error) {
	if _, err := io.WriteString(c.out, Prompt); err != nil {
		return false, err
	}
	line, err := c.readLine()
	eof := errors.Is(err, io.EOF)
	if err != nil && !eof {
		return false, err
	}
	more, err := c.Execute(line)
	if err != nil {
		return false, err
	}
	return more && !eof, nil
}

// Run executes prompts until quit, end of input or ctx cancellation.
func (c *Cli) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := c.ExecPrompt()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (c *Cli) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line, err
}

// Execute runs a single command line. It returns false for quit commands.
func (c *Cli) Execute(line string) (bool, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return true, nil
	}
	cmd, ok := Lookup(tokens[0])
	if !ok {
		c.logger.Debug("command rejected", "input", tokens[0], "reason", "unknown")
		return true, c.println(MsgUnknown)
	}
	if cmd.Op == OpQuit {
		return false, nil
	}
	args := tokens[1:]
	if len(args) != len(cmd.Params) {
		c.logger.Debug("command rejected", "command", cmd.Name(), "reason", "arity", "args", len(args))
		return true, c.println(MsgWrongAmount)
	}
	level := 0
	if cmd.Numeric() {
		n, ok := parseLevel(args[len(args)-1])
		if !ok {
			c.logger.Debug("command rejected", "command", cmd.Name(), "reason", "type")
			return true, c.println(MsgWrongType)
		}
		level = n
	}
	return true, c.dispatch(cmd, args, level)
}

func (c *Cli) dispatch(cmd Command, args []string, level int) error {
	switch cmd.Op {
	case OpPrint:
		return c.svc.PrintPersons(c.out)
	case OpChildren:
		return c.svc.PrintChildren(c.out, args[0])
	case OpCousins:
		return c.svc.PrintCousins(c.out, args[0])
	case OpSiblings:
		return c.svc.PrintSiblings(c.out, args[0])
	case OpParents:
		return c.svc.PrintParents(c.out, args[0])
	case OpTallest:
		return c.svc.PrintTallest(c.out, args[0])
	case OpShortest:
		return c.svc.PrintShortest(c.out, args[0])
	case OpGrandchildren:
		return c.svc.PrintGrandchildren(c.out, args[0], level)
	case OpGrandparents:
		return c.svc.PrintGrandparents(c.out, args[0], level)
	}
	return fmt.Errorf("no handler for command %s", cmd.Name())
}

// parseLevel accepts digit strings that fit an int.
func parseLevel(s string) (int, bool) {
	if !loader.IsNumeric(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Cli) println(msg string) error {
	_, err := fmt.Fprintln(c.out, msg)
	return err
}
