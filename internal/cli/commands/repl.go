package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

const (
	replPrompt = "truthtable> "
	replHelp   = `
Commands:
  .vars [A,B,...]  Set extra variables for every table (no argument clears them)
  .mirror          Toggle the row order
  .state           Show the current variables and row order
  .help            Show this help message
  .quit / .exit    Exit the REPL

Any other line is a formula; its truth table is printed.
Formulas use & (and), | (or), ! (not) and parentheses.
`
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive truth table shell",
		Long: `Start an interactive shell that prints the truth table of every formula
entered. Row order and extra variables persist between formulas.

History is kept in history_file when it is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
	cmd.Flags().BoolP("mirror", "m", false, "Start with the row order reversed")
	return cmd
}

// replSession is the state carried between REPL lines.
type replSession struct {
	cmdCtx   *CommandContext
	vars     string
	mirrored bool
}

func newREPLSession(cmdCtx *CommandContext, mirrored bool) *replSession {
	return &replSession{cmdCtx: cmdCtx, mirrored: mirrored}
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	mirrored := cmdCtx.Cfg.Mirrored
	if cmd.Flags().Changed("mirror") {
		mirrored, _ = cmd.Flags().GetBool("mirror")
	}
	s := newREPLSession(cmdCtx, mirrored)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cmdCtx.Cfg.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "truthtable REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := s.handleLine(line); quit {
			return nil
		}
	}
}

// handleLine processes one line of input and reports whether to exit.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r := s.cmdCtx.Renderer

	if strings.HasPrefix(line, ".") {
		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(command) {
		case ".quit", ".exit":
			return true
		case ".help":
			r.Println(replHelp)
		case ".mirror":
			s.mirrored = !s.mirrored
			r.Println(s.orderLabel())
		case ".vars":
			if _, err := truthtable.SplitVariableList(arg); err != nil {
				s.printError(err)
				return false
			}
			s.vars = arg
			r.Println(s.varsLabel())
		case ".state":
			r.Println(s.varsLabel())
			r.Println(s.orderLabel())
		default:
			_, _ = fmt.Fprintf(r.ErrOut(), "Unknown command: %s (type .help for commands)\n", command)
		}
		return false
	}

	tbl, err := s.cmdCtx.Builder.Generate(s.vars, line, s.mirrored)
	if err != nil {
		s.printError(err)
		return false
	}
	if err := renderTruthTable(r, tbl, s.cmdCtx.Markers(), true); err != nil {
		s.printError(err)
		return false
	}
	r.Println("")
	return false
}

func (s *replSession) printError(err error) {
	_, _ = fmt.Fprintf(s.cmdCtx.Renderer.ErrOut(), "Error: %v\n", err)
}

func (s *replSession) varsLabel() string {
	if strings.TrimSpace(s.vars) == "" {
		return "extra variables: none"
	}
	return "extra variables: " + s.vars
}

func (s *replSession) orderLabel() string {
	if s.mirrored {
		return "row order: mirrored (all true first)"
	}
	return "row order: ascending (all false first)"
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".vars"),
		readline.PcItem(".mirror"),
		readline.PcItem(".state"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
