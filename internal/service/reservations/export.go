package reservations

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Reservations"
)

var exportHeaders = []string{
	"Date", "Start", "End", "Menu", "People", "Customer", "Email", "Phone",
	"Base amount", "Discount", "Final amount", "Currency", "Coupon", "Payment intent", "Created at",
}

// buildWorkbook формирует xlsx со строкой на каждое бронирование
func buildWorkbook(from, to time.Time, list []*domain.ReservationDetails) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	// Заголовок периода
	if err := f.SetCellValue(exportSheet, "A1", fmt.Sprintf("Period: %s - %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, title := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 2)
	if err := f.SetCellStyle(exportSheet, "A2", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, d := range list {
		coupon, paymentIntent := "", ""
		if d.CouponCode != nil {
			coupon = *d.CouponCode
		}
		if d.PaymentIntentID != nil {
			paymentIntent = *d.PaymentIntentID
		}

		row := []interface{}{
			d.ReservationDate.Format(domain.DateFormat),
			d.StartTime.String(),
			d.EndTime.String(),
			d.MenuName,
			d.NumberOfPeople,
			d.Customer.Name,
			d.Customer.Email,
			d.Customer.PhoneNumber,
			d.BaseAmount.InexactFloat64(),
			d.DiscountAmount.InexactFloat64(),
			d.FinalAmount.InexactFloat64(),
			d.Currency,
			coupon,
			paymentIntent,
			d.CreatedAt.Format(time.RFC3339),
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+3, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "O", 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
