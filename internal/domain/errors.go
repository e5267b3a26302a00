package domain

import "errors"

// ErrCacheMiss indica que a chave não existe no cache ou que o conteúdo gravado
// não pôde ser lido. Nunca é fatal: o dataset é recalculado.
var ErrCacheMiss = errors.New("cache miss")
