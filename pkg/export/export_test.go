package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title: "Payments",
		Columns: []Column{
			{Key: "student", Header: "Student", Weight: 2},
			{Key: "amount", Header: "Amount", Align: AlignRight},
			{Key: "status"},
		},
		Rows: []map[string]string{
			{"student": "Ann Karimova", "amount": "150000", "status": "COMPLETED"},
			{"student": "Bob, Jr.", "amount": "99000.50"},
		},
		Footer: []string{"Total revenue: 150000"},
	}
}

func TestCSVRendererWritesHeaderRowsAndFooter(t *testing.T) {
	out, err := NewCSVRenderer().Render(sampleTable())
	require.NoError(t, err)
	assert.Equal(t,
		"Student,Amount,status\nAnn Karimova,150000,COMPLETED\n\"Bob, Jr.\",99000.50,\nTotal revenue: 150000\n",
		string(out))
}

func TestRenderersRejectEmptyColumns(t *testing.T) {
	_, err := NewCSVRenderer().Render(Table{Title: "x"})
	assert.Error(t, err)
	_, err = NewPDFRenderer().Render(Table{Title: "x"})
	assert.Error(t, err)
}

func TestPDFRendererProducesDocument(t *testing.T) {
	out, err := NewPDFRenderer().Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleTable().Columns)
	require.Len(t, widths, 3)
	assert.InDelta(t, pageWidthLandscape, widths[0]+widths[1]+widths[2], 0.001)
	assert.InDelta(t, widths[1]*2, widths[0], 0.001)
}
