package models

// Todo is a single tracked task.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // free-form, e.g. "low", "high"
	IsComplete  bool   `json:"isComplete"`
}
