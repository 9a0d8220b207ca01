package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
)

// TableOutput is the serialised form of a truth table (json and yaml modes).
type TableOutput struct {
	Variables []string       `json:"variables" yaml:"variables"`
	Formula   string         `json:"formula,omitempty" yaml:"formula,omitempty"`
	Mirrored  bool           `json:"mirrored" yaml:"mirrored"`
	Rows      []RowOutput    `json:"rows" yaml:"rows"`
	Summary   *SummaryOutput `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// RowOutput is one serialised row.
type RowOutput struct {
	Index      uint64          `json:"index" yaml:"index"`
	Assignment map[string]bool `json:"assignment" yaml:"assignment"`
	Cells      []string        `json:"cells" yaml:"cells"`
	Result     string          `json:"result,omitempty" yaml:"result,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// SummaryOutput is the serialised formula summary.
type SummaryOutput struct {
	truthtable.Summary `yaml:",inline"`
	Classification     truthtable.Classification `json:"classification" yaml:"classification"`
}

func newSummaryOutput(s truthtable.Summary) *SummaryOutput {
	return &SummaryOutput{Summary: s, Classification: s.Classification()}
}

// newTableOutput converts t for serialisation. The summary is attached only
// when withSummary is set and the table has a formula.
func newTableOutput(t *truthtable.Table, m truthtable.Markers, withSummary bool) TableOutput {
	records := t.Records(m)
	out := TableOutput{
		Variables: t.Variables,
		Formula:   t.Formula,
		Mirrored:  t.Mirrored,
		Rows:      make([]RowOutput, len(t.Rows)),
	}
	for i, row := range t.Rows {
		assignment := make(map[string]bool, len(t.Variables))
		for k, name := range t.Variables {
			assignment[name] = row.Values[k]
		}
		ro := RowOutput{
			Index:      row.Index,
			Assignment: assignment,
			Cells:      records[i],
		}
		if t.HasFormula() {
			ro.Result = row.Result.Render(m)
			if row.Result.Err != nil {
				ro.Error = row.Result.Err.Error()
			}
		}
		out.Rows[i] = ro
	}
	if withSummary && t.HasFormula() {
		out.Summary = newSummaryOutput(t.Summary())
	}
	return out
}

// renderTruthTable writes t in the renderer's effective output mode.
func renderTruthTable(r *output.Renderer, t *truthtable.Table, m truthtable.Markers, withSummary bool) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderJSON(r.Out(), newTableOutput(t, m, withSummary))
	case output.ModeYAML:
		return renderYAML(r.Out(), newTableOutput(t, m, withSummary))
	case output.ModeCSV:
		newTableWriter(r.Out(), t, m, nil).RenderCSV()
		return nil
	case output.ModeMarkdown:
		newTableWriter(r.Out(), t, m, nil).RenderMarkdown()
		if withSummary && t.HasFormula() {
			r.Println("")
			r.Println(formatSummary(t.Summary()))
		}
		return nil
	default:
		renderTextTable(r, t, m, withSummary)
		return nil
	}
}

// newTableWriter prepares a go-pretty writer for t. styles is nil for the
// plain modes.
func newTableWriter(w io.Writer, t *truthtable.Table, m truthtable.Markers, styles *output.Styles) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	// variable names are case-sensitive; keep headers as written
	tw.Style().Format.Header = text.FormatDefault

	header := t.Header()
	headerRow := make(table.Row, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	for i, rec := range t.Records(m) {
		row := make(table.Row, len(rec))
		for k, cell := range rec {
			row[k] = cell
		}
		if styles != nil {
			for k, v := range t.Rows[i].Values {
				row[k] = styleBool(*styles, v, rec[k])
			}
			if t.HasFormula() {
				row[len(rec)-1] = styleCell(*styles, t.Rows[i].Result, rec[len(rec)-1])
			}
		}
		tw.AppendRow(row)
	}
	return tw
}

func renderTextTable(r *output.Renderer, t *truthtable.Table, m truthtable.Markers, withSummary bool) {
	styles := r.Styles()
	tw := newTableWriter(r.Out(), t, m, &styles)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Render()

	r.Println(styles.Muted.Render(fmt.Sprintf("(%d rows)", len(t.Rows))))
	if withSummary && t.HasFormula() {
		r.Println(styles.Bold.Render(formatSummary(t.Summary())))
	}
}

func styleBool(s output.Styles, v bool, text string) string {
	if v {
		return s.True.Render(text)
	}
	return s.False.Render(text)
}

func styleCell(s output.Styles, c truthtable.Cell, text string) string {
	switch c.Kind {
	case truthtable.CellTrue:
		return s.True.Render(text)
	case truthtable.CellFalse:
		return s.False.Render(text)
	case truthtable.CellError:
		return s.Invalid.Render(text)
	}
	return text
}

// formatSummary renders e.g. "Contingent: 3 true, 1 false".
func formatSummary(s truthtable.Summary) string {
	label := cases.Title(language.English).String(string(s.Classification()))
	if s.Errors > 0 {
		return fmt.Sprintf("%s: %d of %d rows failed to evaluate", label, s.Errors, s.Rows)
	}
	return fmt.Sprintf("%s: %d true, %d false", label, s.True, s.False)
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
