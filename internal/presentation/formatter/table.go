package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/webtimed/webtimed/internal/util"
)

// TableFormatter renders a daily report as a bordered terminal table.
// Column sizing is display-width aware since domains and category labels may
// contain CJK text.
type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Domain", "Category", "Time"},
	}
}

func (f *TableFormatter) Format(report DayReport) error {
	widths := f.calculateColumnWidths(report)

	f.printBorder(widths, "┌", "┬", "┐")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "├", "┼", "┤")

	for _, row := range report.Rows {
		f.printRow([]string{
			row.Domain,
			string(row.Category),
			util.FormatSeconds(row.Seconds),
		}, widths)
	}

	f.printBorder(widths, "├", "┴", "┤")
	total := fmt.Sprintf("%s total on %s, productivity %s",
		util.FormatSeconds(report.TotalSeconds), report.Date, util.FormatPercent(report.ProductivityScore))
	f.printFooter(total, widths)
	f.printBorder(widths, "└", "─", "┘")

	return nil
}

func (f *TableFormatter) calculateColumnWidths(report DayReport) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range report.Rows {
		cells := []string{row.Domain, string(row.Category), util.FormatSeconds(row.Seconds)}
		for i, cell := range cells {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Shrink the domain column if the table would overflow the terminal.
	if termWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && termWidth > 20 {
		total := 1
		for _, w := range widths {
			total += w + 3
		}
		if total > termWidth {
			widths[0] -= total - termWidth
			if widths[0] < runewidth.StringWidth(f.headers[0]) {
				widths[0] = runewidth.StringWidth(f.headers[0])
			}
		}
	}

	return widths
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		truncated := runewidth.Truncate(cell, widths[i], "…")
		parts[i] = " " + truncated + strings.Repeat(" ", widths[i]-runewidth.StringWidth(truncated)+1)
	}
	fmt.Println("│" + strings.Join(parts, "│") + "│")
}

func (f *TableFormatter) printFooter(text string, widths []int) {
	inner := 0
	for _, w := range widths {
		inner += w + 2
	}
	inner += len(widths) - 1

	truncated := runewidth.Truncate(" "+text, inner, "…")
	fmt.Println("│" + truncated + strings.Repeat(" ", inner-runewidth.StringWidth(truncated)) + "│")
}

func (f *TableFormatter) printBorder(widths []int, left, mid, right string) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	fmt.Println(left + strings.Join(parts, mid) + right)
}
