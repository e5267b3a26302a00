package utils

import "time"

// ISODate é o formato das datas recebidas na query string
const ISODate = "2006-01-02"

// ParseDate converte uma data YYYY-MM-DD. Texto vazio devolve a data zero, sem erro.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(ISODate, value)
}
