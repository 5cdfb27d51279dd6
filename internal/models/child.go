package models

import "time"

// ChildType classifies which program a child is enrolled in. A newly
// registered child starts as NONE until classified.
type ChildType string

const (
	ChildTypeNone    ChildType = "NONE"
	ChildTypeFullDay ChildType = "FULL_DAY"
	ChildTypeSession ChildType = "SESSIONS"
)

// MinChildID is the lowest id the center hands out. Ids at or below this
// value are reserved and rejected at registration.
const MinChildID = 100

// Child represents a child registered at the center. The id is assigned by
// the staff, not the database, and is never reused even after the row is
// soft-deleted.
type Child struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	BirthDate  time.Time `db:"birth_date" json:"birth_date"`
	Age        int       `db:"age" json:"age"`
	Phone      string    `db:"phone" json:"phone"`
	Address    string    `db:"address" json:"address"`
	FatherJob  string    `db:"father_job" json:"father_job"`
	MotherJob  string    `db:"mother_job" json:"mother_job"`
	Notes      string    `db:"notes" json:"notes"`
	Problems   string    `db:"problems" json:"problems"`
	ChildImage string    `db:"child_image" json:"child_image"`
	ChildType  ChildType `db:"child_type" json:"child_type"`
	HasLeft    bool      `db:"has_left" json:"has_left"`
	IsDeleted  bool      `db:"is_deleted" json:"is_deleted"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
