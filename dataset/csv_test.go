package dataset

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVSpanishHeaders(t *testing.T) {
	data := `Fecha,Repuesto,Cantidad_Vendida,Inventario
2023-01-01,Filtro,5,50
2023-01-02,Aceite,10,30
`
	recs, err := readCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), recs[0].Date)
	assert.Equal(t, "Filtro", recs[0].Category)
	assert.Equal(t, 5, recs[0].QuantitySold)
	assert.Equal(t, 50, recs[0].InventoryLevel)
	assert.Equal(t, "Aceite", recs[1].Category)
}

func TestReadCSVSkipsBadRows(t *testing.T) {
	data := `date,category,quantity_sold,inventory_level
2023-01-01,Filtro,5,50
not-a-date,Aceite,10,30
2023-01-03,Bujía,-1,30
2023-01-04,Correa,2,notanumber
2023-01-05,Batería,7,44
`
	recs, err := readCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Filtro", recs[0].Category)
	assert.Equal(t, "Batería", recs[1].Category)
}

func TestReadCSVMissingColumn(t *testing.T) {
	data := `date,category,quantity_sold
2023-01-01,Filtro,5
`
	_, err := readCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inventory_level")
}

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2023, time.March, 9, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"2023-03-09", "09/03/2023"} {
		got, err := parseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseDate("March 9th")
	assert.Error(t, err)
}
