package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeSlot represents a fixed daily time window with a capacity in people
type TimeSlot struct {
	ID        uuid.UUID
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks time range and capacity
func (s *TimeSlot) Validate() error {
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTimeRange, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTimeRange, err)
	}
	if !s.EndTime.IsAfter(s.StartTime) {
		return ErrInvalidTimeRange
	}
	if s.Capacity < MinSlotCapacity || s.Capacity > MaxSlotCapacity {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, s.Capacity)
	}
	return nil
}

// DurationMinutes returns the slot length in minutes
func (s *TimeSlot) DurationMinutes() int {
	start, errStart := s.StartTime.Minutes()
	end, errEnd := s.EndTime.Minutes()
	if errStart != nil || errEnd != nil {
		return 0
	}
	return end - start
}

// SoldOutSetting marks a slot unavailable on a specific date
type SoldOutSetting struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	Date      time.Time
	CreatedAt time.Time
}

// DailySlot is a time slot as seen on a specific date
type DailySlot struct {
	TimeSlot
	Date              time.Time
	IsSoldOut         bool
	ReservedCount     int // Sum of number_of_people for the date
	AvailableCapacity int
}

// IsFull returns true if no seats remain
func (d *DailySlot) IsFull() bool {
	return d.AvailableCapacity <= 0
}

// IsBookable returns true if a party of the given size can be booked
func (d *DailySlot) IsBookable(people int) bool {
	return !d.IsSoldOut && people > 0 && people <= d.AvailableCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (d *DailySlot) OccupancyRate() float64 {
	if d.Capacity == 0 {
		return 0
	}
	occupied := d.Capacity - d.AvailableCapacity
	return float64(occupied) / float64(d.Capacity) * 100
}

// NewDailySlot computes availability of a slot for a date
func NewDailySlot(slot *TimeSlot, date time.Time, soldOut bool, reserved int) *DailySlot {
	available := slot.Capacity - reserved
	if available < 0 {
		available = 0
	}
	return &DailySlot{
		TimeSlot:          *slot,
		Date:              DateOnly(date),
		IsSoldOut:         soldOut,
		ReservedCount:     reserved,
		AvailableCapacity: available,
	}
}

// BuildDailySlots computes availability of every slot for a date, preserving slot order
func BuildDailySlots(
	date time.Time,
	slots []*TimeSlot,
	soldOut map[uuid.UUID]struct{},
	reserved map[uuid.UUID]int,
) []*DailySlot {
	result := make([]*DailySlot, 0, len(slots))
	for _, slot := range slots {
		_, isSoldOut := soldOut[slot.ID]
		result = append(result, NewDailySlot(slot, date, isSoldOut, reserved[slot.ID]))
	}
	return result
}
