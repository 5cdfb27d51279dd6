package dto

import (
	"time"

	"github.com/nour-apps/nursery-core/internal/models"
)

// Child is the read shape returned by the child service. It mirrors every
// persisted column; it is never accepted as input.
type Child struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	BirthDate  time.Time        `json:"birth_date"`
	Age        int              `json:"age"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	FatherJob  string           `json:"father_job"`
	MotherJob  string           `json:"mother_job"`
	Notes      string           `json:"notes"`
	Problems   string           `json:"problems"`
	ChildImage string           `json:"child_image"`
	ChildType  models.ChildType `json:"child_type"`
	HasLeft    bool             `json:"has_left"`
	IsDeleted  bool             `json:"is_deleted"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateChild carries everything needed to register a child. The id comes
// from the staff and must exceed models.MinChildID. CreatedAt may be set to
// backdate a registration; zero means "now".
type CreateChild struct {
	ID         int       `json:"id" validate:"required,gt=100"`
	Name       string    `json:"name" validate:"required"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
	Age        int       `json:"age" validate:"gte=0"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	FatherJob  string    `json:"father_job"`
	MotherJob  string    `json:"mother_job"`
	Notes      string    `json:"notes"`
	Problems   string    `json:"problems"`
	ChildImage string    `json:"child_image"`
	HasLeft    bool      `json:"has_left"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateChild is a partial patch: nil means the caller left the field
// alone, a non-nil pointer writes the pointed-to value (including zero
// values, which clear the column).
type UpdateChild struct {
	Name       *string    `json:"name"`
	BirthDate  *time.Time `json:"birth_date"`
	Age        *int       `json:"age"`
	Phone      *string    `json:"phone"`
	Address    *string    `json:"address"`
	FatherJob  *string    `json:"father_job"`
	MotherJob  *string    `json:"mother_job"`
	Notes      *string    `json:"notes"`
	Problems   *string    `json:"problems"`
	ChildImage *string    `json:"child_image"`
	HasLeft    *bool      `json:"has_left"`
}
