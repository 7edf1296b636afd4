package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Customer represents the contact who made a reservation
type Customer struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// Reservation represents a booking of a customer into a slot on a date
type Reservation struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	SlotID          uuid.UUID
	MenuID          uuid.UUID
	ReservationDate time.Time
	NumberOfPeople  int

	// Amounts fixed at booking time
	BaseAmount      decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalAmount     decimal.Decimal
	Currency        string
	PaymentIntentID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationDetails is a reservation joined with its customer, slot, menu and coupon
type ReservationDetails struct {
	Reservation
	Customer   Customer
	StartTime  types.TimeString
	EndTime    types.TimeString
	MenuName   string
	CouponCode *string
}

// ReservationFilter фильтр списка бронирований для админки
type ReservationFilter struct {
	Date         *time.Time // Конкретная дата (опционально)
	From         *time.Time // Начало периода (опционально)
	To           *time.Time // Конец периода (опционально)
	CustomerName *string    // Подстрока имени клиента без учета регистра (опционально)
}

// DashboardStats сводка для главной страницы админки
type DashboardStats struct {
	TotalReservations int
	TodayReservations int
	TotalTimeSlots    int
	SoldOutSlots      int // Слоты, закрытые на сегодня
}

// Admin represents an administrator account
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
