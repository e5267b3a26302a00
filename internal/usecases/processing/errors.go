package processing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidDate   = errors.New("invalid visit date")
)

// SchemaError indica que o esquema de entrada não tem todas as colunas obrigatórias
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s(s): %s", ErrMissingColumn.Error(), strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

// DateParseError indica uma data de visita que não pôde ser interpretada
type DateParseError struct {
	Row   int
	Value any
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s %q at row %d: %v", ErrInvalidDate.Error(), fmt.Sprint(e.Value), e.Row, e.Err)
}

func (e *DateParseError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}
