package order

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"Order Number", "Date", "Status", "Amount", "Items", "Tracking ID"}

// WriteCSV serializes an already filtered and sorted history: one header
// row plus one row per order, amounts carrying the currency symbol.
func WriteCSV(w io.Writer, orders []Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, o := range orders {
		row := []string{
			o.OrderNumber,
			o.CreatedAt.Format("2006-01-02"),
			string(o.Status),
			fmt.Sprintf("₹%.2f", o.TotalAmount),
			strconv.Itoa(len(o.Items)),
			o.TrackingID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the download name for a history export, e.g.
// order-history-2025-08-30.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("order-history-%s.csv", now.UTC().Format("2006-01-02"))
}
