package mapping

import "errors"

// Erros específicos para o contexto do mapa de visitas
var (
	// Erros de validação
	ErrInvalidSignature = errors.New("invalid query signature")

	// Erros de estado
	ErrNoData = errors.New("no data available")

	// Erros de serviços externos
	ErrSourceUnavailable = errors.New("visit source unavailable")

	// Erros de persistência. O dataset calculado continua sendo devolvido junto com este erro.
	ErrCacheWrite = errors.New("cache write failed")
)
