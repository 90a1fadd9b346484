package achievement

import (
	"encoding/json"
	"time"
)

type Achievement struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Criteria    json.RawMessage `json:"criteria"`
	Icon        *string         `json:"icon,omitempty"`
}

// Earned is an achievement joined with the moment a given user earned it.
type Earned struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	AchievedAt  time.Time `json:"achieved_at"`
}
