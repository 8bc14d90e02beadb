// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/matrix"
)

// Semantic palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#8C8C8C")
	colorDanger  = lipgloss.Color("#FF5252")
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleBorder = lipgloss.NewStyle().Foreground(colorMuted)
	styleError  = lipgloss.NewStyle().Foreground(colorDanger)
)

// report writes titled tables in the configured style.
type report struct {
	w     io.Writer
	plain bool
}

func (a *app) report(w io.Writer) *report {
	return &report{w: w, plain: a.cfg.Output == "plain"}
}

func (r *report) title(s string) {
	fmt.Fprintln(r.w, styleTitle.Render(s))
}

func (r *report) failure(op string, err error) {
	fmt.Fprintln(r.w, styleError.Render(op+": "+err.Error()))
}

func (r *report) table(headers []string, rows [][]string) {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
	if r.plain {
		t = t.Border(lipgloss.HiddenBorder())
	} else {
		t = t.Border(lipgloss.NormalBorder()).BorderStyle(styleBorder)
	}
	fmt.Fprintln(r.w, t.String())
}

// pairs prints key/value lines as a two-column table.
func (r *report) pairs(kv ...string) {
	rows := make([][]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		rows = append(rows, []string{kv[i], kv[i+1]})
	}
	r.table([]string{"figure", "value"}, rows)
}

// matrix prints m with vertex ids as row and column labels.
func (r *report) matrix(ids []core.VertexID, m *matrix.Dense) {
	headers := make([]string, 0, len(ids)+1)
	headers = append(headers, "")
	for _, id := range ids {
		headers = append(headers, strconv.Itoa(id))
	}
	rows := make([][]string, len(ids))
	for i, id := range ids {
		row := make([]string, 0, len(ids)+1)
		row = append(row, strconv.Itoa(id))
		for _, x := range m.Row(i) {
			row = append(row, num(x))
		}
		rows[i] = row
	}
	r.table(headers, rows)
}

// num renders x compactly; infinity prints as "inf".
func num(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}

	return strconv.FormatFloat(x, 'g', 4, 64)
}

// label returns "id (label)" or just the id.
func label(g *core.Graph, id core.VertexID) string {
	v, err := g.Vertex(id)
	if err != nil || v.Label == "" {
		return strconv.Itoa(id)
	}

	return fmt.Sprintf("%d (%s)", id, v.Label)
}
