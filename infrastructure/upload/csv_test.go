package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visit-map-api/internal/domain"
)

func TestReadCSV(t *testing.T) {
	input := "\ufefflongitude, latitude,store_id,store_name,full_name,tanggal,area_id,area_name\n" +
		"106.8,-6.2,S1,Toko Satu,Budi,2024-01-01,10,Jakarta\n" +
		"106.9,bad,S2,\"Toko, Dua\",Siti,2024-01-02\n"

	rs, err := ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"longitude", "latitude", "store_id", "store_name", "full_name", "tanggal", "area_id", "area_name",
	}, rs.Columns)
	require.Len(t, rs.Rows, 2)

	assert.Equal(t, domain.RawRow{
		"longitude":  "106.8",
		"latitude":   "-6.2",
		"store_id":   "S1",
		"store_name": "Toko Satu",
		"full_name":  "Budi",
		"tanggal":    "2024-01-01",
		"area_id":    "10",
		"area_name":  "Jakarta",
	}, rs.Rows[0])

	assert.Equal(t, "Toko, Dua", rs.Rows[1]["store_name"])
	assert.Nil(t, rs.Rows[1]["area_id"])
	assert.Nil(t, rs.Rows[1]["area_name"])
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	rs, err := ReadCSV(strings.NewReader("longitude,latitude\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"longitude", "latitude"}, rs.Columns)
	assert.Empty(t, rs.Rows)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ReadCSV(strings.NewReader("a,b\n\"aberto,1\n"))
	assert.ErrorIs(t, err, ErrMalformedCSV)
}
