package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportSnapshot is a rendered report persisted at render time, so past
// reports stay reproducible after new runs shift the ranking.
type ReportSnapshot struct {
	ID        uuid.UUID `json:"id"`
	Format    string    `json:"format"` // 'markdown', 'latex' or 'csv'
	Content   string    `json:"content"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *ReportSnapshot) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
