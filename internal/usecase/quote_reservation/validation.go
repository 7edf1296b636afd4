package quote_reservation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.MenuID == uuid.Nil {
		return fmt.Errorf("%w: menu id is required", ErrInvalidInput)
	}
	if req.NumberOfPeople < domain.MinPartySize || req.NumberOfPeople > domain.MaxPartySize {
		return fmt.Errorf("%w: must be between %d and %d, got %d",
			ErrInvalidPartySize, domain.MinPartySize, domain.MaxPartySize, req.NumberOfPeople)
	}
	return nil
}
