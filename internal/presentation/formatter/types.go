package formatter

import (
	"github.com/webtimed/webtimed/internal/core/model"
)

// DomainRow is one line of a daily usage report.
type DomainRow struct {
	Domain   string         `json:"domain"`
	Category model.Category `json:"category"`
	Seconds  int64          `json:"seconds"`
}

// DayReport is a full daily usage report for formatting.
type DayReport struct {
	Date              string      `json:"date"`
	TotalSeconds      int64       `json:"totalSeconds"`
	ProductivityScore int         `json:"productivityScore"`
	Rows              []DomainRow `json:"domains"`
}
