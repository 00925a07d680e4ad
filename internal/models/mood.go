package models

type MoodLog struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Date   string `json:"date"`   // YYYY-MM-DD format
	Mood   int    `json:"mood"`   // 0..10
	Energy int    `json:"energy"` // 0..10
}
