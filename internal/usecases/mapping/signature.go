package mapping

import (
	"fmt"

	"github.com/vfg2006/visit-map-api/internal/domain"
	"github.com/vfg2006/visit-map-api/pkg/utils"
)

// ParseSignature monta a assinatura a partir dos parâmetros da requisição
func ParseSignature(startDate, endDate, areaID, accountID string) (domain.QuerySignature, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return domain.QuerySignature{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidSignature)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return domain.QuerySignature{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidSignature)
	}

	sig := domain.QuerySignature{
		StartDate: start,
		EndDate:   end,
		AreaID:    NormalizeFilter(areaID),
		AccountID: NormalizeFilter(accountID),
	}

	if err := ValidateSignature(sig); err != nil {
		return domain.QuerySignature{}, err
	}

	return sig, nil
}

// ValidateSignature exige as duas datas e que o início não seja posterior ao fim
func ValidateSignature(sig domain.QuerySignature) error {
	if sig.StartDate.IsZero() || sig.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", ErrInvalidSignature)
	}

	if sig.StartDate.After(sig.EndDate) {
		return fmt.Errorf("%w: start_date must not be after end_date", ErrInvalidSignature)
	}

	return nil
}
