package models

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// StatsResponse сводка для главной страницы админки
type StatsResponse struct {
	TotalReservations int `json:"totalReservations"`
	TodayReservations int `json:"todayReservations"`
	TotalTimeSlots    int `json:"totalTimeSlots"`
	SoldOutSlots      int `json:"soldOutSlots"`
}

// FromDomain конвертирует статистику в ответ
func FromDomain(s *domain.DashboardStats) *StatsResponse {
	return &StatsResponse{
		TotalReservations: s.TotalReservations,
		TodayReservations: s.TodayReservations,
		TotalTimeSlots:    s.TotalTimeSlots,
		SoldOutSlots:      s.SoldOutSlots,
	}
}
