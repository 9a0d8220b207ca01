package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/internal/workbook"
)

// BatchOptions holds options for the batch command.
type BatchOptions struct {
	Watch   bool
	Summary bool
	Strict  bool
}

// BatchEntryOutput is the json/yaml form of one workbook entry.
type BatchEntryOutput struct {
	Name  string       `json:"name" yaml:"name"`
	Error string       `json:"error,omitempty" yaml:"error,omitempty"`
	Table *TableOutput `json:"table,omitempty" yaml:"table,omitempty"`
}

// ErrBatchFailed is returned by a strict batch run when an entry failed.
var ErrBatchFailed = errors.New("one or more tables failed")

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <workbook.yaml>",
		Short: "Build every table listed in a workbook",
		Long: `Build the truth tables listed in a YAML workbook.

Each entry names its variables, an optional formula and an optional row
order. Entries that fail are reported in place and do not stop the rest.
With --watch the workbook is re-read and re-rendered whenever it changes,
until interrupted.`,
		Example: `  truthtable batch tables.yaml
  truthtable batch tables.yaml -o json
  truthtable batch tables.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watchBatch(ctx, cmd, args[0], opts)
			}
			return runBatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render when the workbook changes")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print each formula's classification")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero if any table failed")

	return cmd
}

func runBatch(cmd *cobra.Command, path string, opts *BatchOptions) error {
	cmdCtx := NewCommandContext(cmd)

	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}
	results := wb.Run(cmdCtx.Builder, cmdCtx.Cfg.Mirrored)
	if err := renderBatch(cmdCtx, results, opts.Summary); err != nil {
		return err
	}

	if opts.Strict {
		for _, res := range results {
			if res.Failed() != nil {
				return ErrBatchFailed
			}
		}
	}
	return nil
}

// watchBatch renders once, then again after every change until ctx ends.
// A workbook that fails to load is reported and the previous output stands.
func watchBatch(ctx context.Context, cmd *cobra.Command, path string, opts *BatchOptions) error {
	cmdCtx := NewCommandContext(cmd)

	render := func() {
		wb, err := workbook.Load(path)
		if err != nil {
			cmdCtx.Renderer.Warning(err.Error())
			return
		}
		if err := renderBatch(cmdCtx, wb.Run(cmdCtx.Builder, cmdCtx.Cfg.Mirrored), opts.Summary); err != nil {
			cmdCtx.Logger.Error("render failed", "error", err)
		}
	}

	watcher, err := workbook.NewWatcher(path, cmdCtx.Logger)
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return watcher.Run(egctx)
	})
	eg.Go(func() error {
		render()
		for range watcher.Changes() {
			cmdCtx.Logger.Debug("workbook changed, re-rendering", "path", path)
			render()
		}
		return nil
	})

	return eg.Wait()
}

func renderBatch(cmdCtx *CommandContext, results []workbook.Result, withSummary bool) error {
	r := cmdCtx.Renderer
	m := cmdCtx.Markers()

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		entries := make([]BatchEntryOutput, len(results))
		for i, res := range results {
			entries[i].Name = res.Entry.Name
			if res.Err != nil {
				entries[i].Error = res.Err.Error()
				continue
			}
			to := newTableOutput(res.Table, m, withSummary)
			entries[i].Table = &to
		}
		if r.EffectiveMode() == output.ModeJSON {
			return renderJSON(r.Out(), entries)
		}
		return renderYAML(r.Out(), entries)
	}

	for i, res := range results {
		if i > 0 {
			r.Println("")
		}
		r.Header(2, res.Entry.Name)
		if res.Err != nil {
			r.Println(fmt.Sprintf("%s: %v", m.Error, res.Err))
			continue
		}
		if err := renderTruthTable(r, res.Table, m, withSummary); err != nil {
			return fmt.Errorf("failed to render %s: %w", res.Entry.Name, err)
		}
	}
	return nil
}
