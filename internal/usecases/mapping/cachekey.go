package mapping

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vfg2006/visit-map-api/internal/domain"
)

// NoFilterToken representa um filtro não informado na chave canônica.
// Um filtro vazio nunca vira string vazia, para não colidir com "sem filtro".
const NoFilterToken = "all"

// NormalizeFilter trata ausente, vazio e o próprio placeholder como "sem filtro"
func NormalizeFilter(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || value == NoFilterToken {
		return nil
	}
	return &value
}

// CanonicalSignature serializa a assinatura numa string estável
func CanonicalSignature(sig domain.QuerySignature) string {
	return fmt.Sprintf(
		"start_date=%s|end_date=%s|area_id=%s|account_id=%s",
		sig.StartDate.Format(domain.DateLayout),
		sig.EndDate.Format(domain.DateLayout),
		filterToken(sig.AreaID),
		filterToken(sig.AccountID),
	)
}

// DeriveKey gera a chave do cache: md5 em hexadecimal da assinatura canônica
func DeriveKey(sig domain.QuerySignature) string {
	sum := md5.Sum([]byte(CanonicalSignature(sig)))
	return hex.EncodeToString(sum[:])
}

func filterToken(value *string) string {
	if value == nil {
		return NoFilterToken
	}
	return *value
}
