package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// Invoice date layouts seen in PFG exports. Tried in order; a row whose
// date matches none of them keeps the zero time, which sorts first and
// never breaks downstream math.
var invoiceDateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
	"Jan 2, 2006",
}

// Normalize maps one raw column-keyed row into a canonical InvoiceLine.
// Malformed rows never raise: unparsable numbers degrade to 0 and the
// unit price invariant is enforced here, before any statistic runs.
func Normalize(row models.RawInvoiceRow) models.InvoiceLine {
	qty := parseFloat(row["Qty Shipped"])
	ext := parseFloat(row["Ext. Price"])
	unit := parseFloat(row["Unit Price"])

	// Compute unit price if missing
	if unit <= 0 {
		if qty > 0 {
			unit = ext / qty
		} else {
			unit = 0
		}
	}

	category := row["Product Class Description"]
	if category == "" {
		category = row["Category/Class"]
	}

	return models.InvoiceLine{
		InvoiceDate:        parseInvoiceDate(row["Invoice Date"]),
		InvoiceNumber:      row["Invoice Number"],
		Category:           strings.TrimSpace(category),
		ProductCode:        row["Product #"],
		ProductDescription: row["Product Description"],
		Brand:              row["Brand"],
		Vendor:             row["Manufacturer Name"],
		UnitPrice:          unit,
		ExtPrice:           ext,
		Qty:                qty,
		QtyOrdered:         parseFloat(row["Qty Ordered"]),
		Weight:             row["Weight"],
		PackSize:           row["Pack Size"],
		CustomerName:       row["Customer Name"],
	}
}

// NormalizeAll maps a batch of raw rows.
func NormalizeAll(rows []models.RawInvoiceRow) []models.InvoiceLine {
	lines := make([]models.InvoiceLine, len(rows))
	for i, row := range rows {
		lines[i] = Normalize(row)
	}
	return lines
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Tolerate currency formatting in exports ("$1,234.56")
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInvoiceDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
