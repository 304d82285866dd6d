package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/adapter/http/dto"
	"github.com/iho/leaguebudget/internal/domain"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
)

func printError(msg string) {
	danger.Fprintln(os.Stderr, msg)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func formatNullAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return formatAmount(d.Decimal)
}

func formatNull(d decimal.NullDecimal, places int32) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(places)
}

type cell struct {
	text  string
	style *color.Color
}

func plain(text string) cell {
	return cell{text: text}
}

// table right-aligns columns. Cells are padded before they are colored so
// escape codes never count towards the column width.
type table struct {
	header []string
	rows   [][]cell
}

func newTable(columns []string) *table {
	return &table{header: columns}
}

func (t *table) add(cells ...cell) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.text); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]cell, len(t.header))
	for i, h := range t.header {
		header[i] = plain(h)
	}
	writeRow(w, widths, header)
	for _, row := range t.rows {
		writeRow(w, widths, row)
	}
}

func writeRow(w io.Writer, widths []int, row []cell) {
	parts := make([]string, len(row))
	for i, c := range row {
		padded := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text)) + c.text
		if c.style != nil {
			padded = c.style.Sprint(padded)
		}
		parts[i] = padded
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

func renderBudgets(w io.Writer, report *dto.BudgetReportResponse) {
	accent.Fprintf(w, "League %s (run %s)\n", report.LeagueID, report.RunID)

	t := newTable(report.Columns)
	for _, row := range report.Rows {
		available := plain(formatAmount(row.AvailableBudget))
		if row.AvailableBudget.IsNegative() {
			available.style = danger
		}
		t.add(
			plain(row.User),
			plain(formatAmount(row.Budget)),
			plain(formatNullAmount(row.TeamValue)),
			plain(formatAmount(row.MaxNegative)),
			available,
		)
	}
	t.render(w)

	if report.Reconciled {
		success.Fprintf(w, "Budget of %s synced with the league (estimate was %s)\n", report.Anchor, formatNullAmount(report.AnchorEstimate))
	}
	for _, warning := range report.Warnings {
		warn.Fprintf(w, "warning [%s] %s: %s\n", warning.Stage, warning.Subject, warning.Reason)
	}
}

func squadCells(r domain.SquadRecommendation) []cell {
	return []cell{
		plain(r.LastName),
		plain(r.TeamName),
		plain(formatAmount(r.MarketValue)),
		plain(formatAmount(r.MVChangeYesterday)),
		plain(formatAmount(r.PredictedMVTarget)),
		plain(formatNull(r.S11Prob, 2)),
	}
}

func renderMarket(w io.Writer, mt *domain.MarketTable) {
	if len(mt.Rows) == 0 {
		warn.Fprintln(w, "No market recommendations.")
		return
	}

	t := newTable(mt.Columns)
	for _, row := range mt.Rows {
		expiring := plain(fmt.Sprint(row.ExpiringToday))
		if row.ExpiringToday {
			expiring.style = success
		}
		t.add(append(squadCells(row.SquadRecommendation), plain(formatNull(row.HoursToExpiry, 2)), expiring)...)
	}
	t.render(w)
}

func renderSquad(w io.Writer, st *domain.SquadTable) {
	if len(st.Rows) == 0 {
		warn.Fprintln(w, "No squad players found.")
		return
	}

	t := newTable(st.Columns)
	for _, row := range st.Rows {
		t.add(squadCells(row)...)
	}
	t.render(w)
}
