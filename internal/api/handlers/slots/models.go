package slots

// ToggleSoldOutRequest HTTP request model
type ToggleSoldOutRequest struct {
	Date string `json:"date"` // "2026-04-01"
}
