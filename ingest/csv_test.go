package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/ingest"
)

func TestParseCSVHeaderKeyedRows(t *testing.T) {
	input := strings.Join([]string{
		"Invoice Number,Invoice Date,Product Description,Unit Price,Ext. Price",
		"INV-1,2024-01-05,MOZZARELLA SHRD 4/5 LB,80.50,161.00",
		"INV-1,2024-01-05,FLOUR HI-GLUTEN 50 LB,24.00,24.00",
	}, "\n")

	rows, err := ingest.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "INV-1", rows[0]["Invoice Number"])
	assert.Equal(t, "MOZZARELLA SHRD 4/5 LB", rows[0]["Product Description"])
	assert.Equal(t, "80.50", rows[0]["Unit Price"])
	assert.Equal(t, "24.00", rows[1]["Ext. Price"])
}

func TestParseCSVStripsBOMAndTrims(t *testing.T) {
	input := "\uFEFF" + "Invoice Number , Unit Price\nINV-9, 12.50 \n"

	rows, err := ingest.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-9", rows[0]["Invoice Number"])
	assert.Equal(t, "12.50", rows[0]["Unit Price"])
}

func TestParseCSVSkipsBlankAndShortRows(t *testing.T) {
	input := strings.Join([]string{
		"Invoice Number,Unit Price,Ext. Price",
		"INV-1,10,10",
		",,",
		"INV-2,20", // ragged: missing ext price
	}, "\n")

	rows, err := ingest.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[1]["Ext. Price"])
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ingest.ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ingest.ErrNoData)

	_, err = ingest.ParseCSV(strings.NewReader("Invoice Number,Unit Price\n"))
	assert.ErrorIs(t, err, ingest.ErrNoData)
}
