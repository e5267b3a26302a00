// Package upload converte arquivos enviados pelo usuário em linhas cruas de visitas
package upload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/visit-map-api/internal/domain"
)

var (
	ErrEmptyFile    = errors.New("uploaded file has no header row")
	ErrMalformedCSV = errors.New("malformed CSV file")
)

const utf8BOM = "\ufeff"

// ReadCSV lê um CSV com cabeçalho. Campos ausentes no fim da linha ficam nil,
// como células vazias de planilha.
func ReadCSV(r io.Reader) (*domain.RowSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[i] = strings.TrimSpace(name)
	}

	rowSet := &domain.RowSet{
		Columns: columns,
		Rows:    make([]domain.RawRow, 0),
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}

		row := make(domain.RawRow, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = nil
			}
		}
		rowSet.Rows = append(rowSet.Rows, row)
	}

	return rowSet, nil
}
