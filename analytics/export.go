package analytics

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

var exportBaseHeader = []string{
	"Invoice Date", "Invoice Number", "Category", "Product Description",
	"Brand", "Manufacturer Name", "Pack Size", "Qty Shipped", "Qty Ordered",
	"Unit Price", "Ext. Price",
}

var exportAnalyticsHeader = []string{
	"Rolling Mean", "Rolling Std Dev", "Volatility", "Z-Score",
	"Is Spike", "Spike Direction",
}

// ExportCSV renders records as CSV for download. With includeAnalytics
// the rolling/spike annotation columns are appended to each row.
func ExportCSV(data []models.InvoiceLine, includeAnalytics bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := exportBaseHeader
	if includeAnalytics {
		header = append(append([]string{}, exportBaseHeader...), exportAnalyticsHeader...)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range data {
		row := []string{
			dayKey(item.InvoiceDate),
			item.InvoiceNumber,
			item.Category,
			item.ProductDescription,
			item.Brand,
			item.Vendor,
			item.PackSize,
			formatFloat(item.Qty),
			formatFloat(item.QtyOrdered),
			formatFloat(item.UnitPrice),
			formatFloat(item.ExtPrice),
		}
		if includeAnalytics {
			volatility := ""
			if item.Volatility != nil {
				volatility = formatFloat(*item.Volatility)
			}
			row = append(row,
				formatFloat(item.RollingMean),
				formatFloat(item.RollingStdDev),
				volatility,
				formatFloat(item.ZScore),
				strconv.FormatBool(item.IsSpike),
				item.SpikeDirection,
			)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
