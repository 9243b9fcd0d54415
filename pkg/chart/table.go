package chart

import (
	"fmt"
	"sort"
	"time"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/domain"
)

// TableRow is one line of the XP log: project, local date-time, and the
// amount converted from the smallest XP unit to display units (÷1000, two
// decimals).
type TableRow struct {
	Name string
	When time.Time
	Date string
	XP   string
}

// XPTable lays out the XP log rows, newest first. This sort is deliberately
// opposite to the chart's ascending series — both derive from the same raw
// transactions but present differently.
func XPTable(txs []domain.XPTransaction) []TableRow {
	sorted := make([]domain.XPTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	rows := make([]TableRow, len(sorted))
	for i, tx := range sorted {
		rows[i] = TableRow{
			Name: aggregate.PlainProjectName(tx.Path),
			When: tx.CreatedAt,
			Date: tx.CreatedAt.Local().Format("Jan 2, 2006, 3:04 PM"),
			XP:   formatXP(tx.Amount),
		}
	}
	return rows
}

// TotalRow is the synthetic summary row appended under the log.
func TotalRow(total float64) TableRow {
	return TableRow{Name: "TOTAL", XP: formatXP(total)}
}

func formatXP(amount float64) string {
	return fmt.Sprintf("%.2f", amount/1000)
}
