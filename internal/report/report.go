// Package report renders evaluation results, rule tables and membership
// curves as styled text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/fuzzscore/internal/category"
	"github.com/abhisek/fuzzscore/internal/fuzzy"
	"github.com/abhisek/fuzzscore/internal/linguistic"
	"github.com/abhisek/fuzzscore/internal/membership"
	"github.com/abhisek/fuzzscore/internal/rulebase"
)

// Options controls text rendering.
type Options struct {
	Color    bool
	BarWidth int
}

func (o Options) barWidth() int {
	if o.BarWidth <= 0 {
		return DefaultBarWidth
	}
	return o.BarWidth
}

// Evaluation is the JSON document for one evaluation.
type Evaluation struct {
	*fuzzy.Result
	Advisories []fuzzy.Advisory `json:"advisories,omitempty"`
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result writes a human-readable report of one evaluation.
func Result(w io.Writer, res *fuzzy.Result, advisories []fuzzy.Advisory, opts Options) error {
	th := newTheme(opts.Color)
	var b strings.Builder

	b.WriteString(th.title.Render("Performance Score") + "\n")
	fmt.Fprintf(&b, "  %s %s  %s\n",
		th.label.Render("Score"),
		formatScore(res.Score),
		th.category[res.Category].Render("("+category.DisplayName(res.Category)+")"))

	if len(advisories) > 0 {
		b.WriteString("\n" + th.section.Render("Advisories") + "\n")
		for _, a := range advisories {
			b.WriteString("  " + th.warn.Render("!") + " " + a.String() + "\n")
		}
	}

	b.WriteString("\n" + th.section.Render("Fuzzification") + "\n")
	for _, vec := range res.Fuzzification {
		writeVector(&b, th, vec, opts.barWidth())
	}

	b.WriteString("\n" + th.section.Render(fmt.Sprintf("Fired rules (%d)", len(res.FiredRules))) + "\n")
	if len(res.FiredRules) == 0 {
		b.WriteString("  " + th.dim.Render("no rule fired; score defaults to 0") + "\n")
	} else {
		rows := make([][]string, 0, len(res.FiredRules))
		for _, fr := range res.FiredRules {
			rows = append(rows, []string{
				strconv.Itoa(fr.Index + 1),
				fr.Label,
				formatDegree(fr.Alpha),
				fr.Consequent,
			})
		}
		b.WriteString(renderTable(th, []string{"#", "Rule", "Alpha", "Output"}, rows) + "\n")
	}

	if len(res.Aggregation) > 0 {
		b.WriteString("\n" + th.section.Render("Aggregation") + "\n")
		for _, s := range res.Aggregation {
			fmt.Fprintf(&b, "  %-10s %s %s  %s\n",
				s.Term,
				degreeBar(th, s.Alpha, opts.barWidth()),
				formatDegree(s.Alpha),
				th.dim.Render("center "+strconv.FormatFloat(s.Center, 'f', -1, 64)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeVector(b *strings.Builder, th theme, vec membership.Vector, width int) {
	name := vec.Variable
	unit := ""
	if v, err := linguistic.ByName(vec.Variable); err == nil {
		name = v.DisplayName
		unit = v.Unit
	}
	input := strconv.FormatFloat(vec.Input, 'f', -1, 64)
	if unit != "" {
		input += " " + unit
	}
	fmt.Fprintf(b, "  %s %s\n", th.label.Render(name), th.dim.Render(input))
	for _, d := range vec.Degrees {
		fmt.Fprintf(b, "    %-10s %s %s\n", d.Term, degreeBar(th, d.Value, width), formatDegree(d.Value))
	}
}

// Rules writes the rule table in evaluation order.
func Rules(w io.Writer, rb *rulebase.RuleBase, opts Options) error {
	th := newTheme(opts.Color)
	headers := append([]string{"#"}, rb.Variables()...)
	headers = append(headers, linguistic.NamePerformance)

	rows := make([][]string, 0, rb.Len())
	for i, r := range rb.All {
		row := []string{strconv.Itoa(i + 1)}
		row = append(row, r.If[:]...)
		row = append(row, r.Then)
		rows = append(rows, row)
	}

	title := th.title.Render(fmt.Sprintf("Rule base %s (%d rules)", rb.Version(), rb.Len()))
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, renderTable(th, headers, rows))
	return err
}

// Curve writes the sampled membership degrees of v as a table with one
// column per term.
func Curve(w io.Writer, v *membership.Variable, samples iter.Seq[membership.Sample], opts Options) error {
	th := newTheme(opts.Color)
	headers := append([]string{"x"}, v.TermNames()...)

	var rows [][]string
	for s := range samples {
		row := []string{strconv.FormatFloat(s.X, 'f', -1, 64)}
		for _, d := range s.Degrees {
			row = append(row, formatDegree(d))
		}
		rows = append(rows, row)
	}

	title := v.DisplayName
	if v.Unit != "" {
		title += " (" + v.Unit + ")"
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", th.title.Render(title), renderTable(th, headers, rows))
	return err
}

// CurveJSON is the JSON document for a sampled curve.
type CurveJSON struct {
	Variable string              `json:"variable"`
	Terms    []string            `json:"terms"`
	Samples  []membership.Sample `json:"samples"`
}

// CurveDocument collects samples into a CurveJSON.
func CurveDocument(v *membership.Variable, samples iter.Seq[membership.Sample]) CurveJSON {
	doc := CurveJSON{Variable: v.Name, Terms: v.TermNames(), Samples: []membership.Sample{}}
	for s := range samples {
		doc.Samples = append(doc.Samples, s)
	}
	return doc
}

func renderTable(th theme, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header
			}
			return th.cell
		})
	return t.String()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func formatDegree(d float64) string {
	return strconv.FormatFloat(d, 'f', 4, 64)
}
