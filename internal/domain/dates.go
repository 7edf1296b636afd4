package domain

import "time"

// DateOnly обнуляет время, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваются только календарные даты, сегодняшний день прошлым не считается
func IsDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	dateOnly := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Date()
	nowOnly := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
