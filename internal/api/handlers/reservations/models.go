package reservations

import (
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// ToListRequest формирует фильтр из query параметров
func ToListRequest(dateStr, name string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if dateStr = strings.TrimSpace(dateStr); dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = ptr.Ptr(date)
	}

	if name = strings.TrimSpace(name); name != "" {
		req.Name = ptr.Ptr(name)
	}

	return req, nil
}

// ToExportRequest формирует период выгрузки из query параметров
func ToExportRequest(fromStr, toStr string) (*models.ExportRequest, error) {
	from, err := domain.ParseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseDate(toStr)
	if err != nil {
		return nil, err
	}
	return &models.ExportRequest{From: from, To: to}, nil
}
