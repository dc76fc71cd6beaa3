package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a resolved person record for data transfer between layers.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Aliases   []string  `json:"aliases"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
