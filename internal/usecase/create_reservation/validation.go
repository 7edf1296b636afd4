package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request, now time.Time) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" || len(phone) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is required and must be at most %d characters", ErrInvalidInput, domain.MaxPhoneNumberLength)
	}

	if req.NumberOfPeople < domain.MinPartySize || req.NumberOfPeople > domain.MaxPartySize {
		return fmt.Errorf("%w: must be between %d and %d, got %d",
			ErrInvalidPartySize, domain.MinPartySize, domain.MaxPartySize, req.NumberOfPeople)
	}

	if req.MenuID == uuid.Nil {
		return fmt.Errorf("%w: menu id is required", ErrInvalidInput)
	}
	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}

	if req.ReservationDate.IsZero() {
		return fmt.Errorf("%w: reservation date is required", ErrInvalidInput)
	}
	if domain.IsDateInPast(req.ReservationDate, now) {
		return ErrDateInPast
	}

	return nil
}

// validateEmail проверяет, что строка является одним адресом без отображаемого имени
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return nil
}
