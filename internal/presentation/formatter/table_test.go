package formatter

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/webtimed/webtimed/internal/core/model"
)

func TestCalculateColumnWidths(t *testing.T) {
	f := NewTableFormatter()
	report := DayReport{
		Date: "2024-04-01",
		Rows: []DomainRow{
			{Domain: "a-very-long-domain-name.example.com", Category: model.CategoryProductivity, Seconds: 3600},
			{Domain: "b.com", Category: model.CategoryNeutral, Seconds: 45},
		},
	}

	widths := f.calculateColumnWidths(report)

	assert.Len(t, widths, 3)
	assert.GreaterOrEqual(t, widths[0], len("a-very-long-domain-name.example.com"))
	assert.GreaterOrEqual(t, widths[1], len("Productivity"))
	// Header width is the floor for every column.
	assert.GreaterOrEqual(t, widths[2], len("Time"))
}

func TestColumnWidthsAreDisplayAware(t *testing.T) {
	f := NewTableFormatter()
	report := DayReport{
		Rows: []DomainRow{
			{Domain: "哔哩哔哩.com", Category: model.CategoryEntertainment, Seconds: 100},
		},
	}

	widths := f.calculateColumnWidths(report)

	// CJK characters occupy two cells each.
	assert.Equal(t, runewidth.StringWidth("哔哩哔哩.com"), widths[0])
	assert.Greater(t, widths[0], len([]rune("哔哩哔哩.com")))
}
