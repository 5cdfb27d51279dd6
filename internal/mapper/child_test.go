package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

func TestNewChildFromCreateForcesDefaults(t *testing.T) {
	child := NewChildFromCreate(dto.CreateChild{
		ID:        101,
		Name:      "Lina",
		BirthDate: time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	// Classification and deletion state are never caller input.
	assert.Equal(t, models.ChildTypeNone, child.ChildType)
	assert.False(t, child.IsDeleted)
	assert.Equal(t, 101, child.ID)
}

func TestApplyChildPatchOnlyTouchesSetFields(t *testing.T) {
	record := &models.Child{
		ID:        101,
		Name:      "Lina",
		Phone:     "0790000000",
		Notes:     "quiet",
		ChildType: models.ChildTypeFullDay,
	}

	name := "Lina K"
	notes := ""
	ApplyChildPatch(record, dto.UpdateChild{Name: &name, Notes: &notes})

	assert.Equal(t, "Lina K", record.Name)
	assert.Equal(t, "", record.Notes, "set pointer to zero value clears the field")
	assert.Equal(t, "0790000000", record.Phone, "nil pointer leaves the field alone")
	assert.Equal(t, models.ChildTypeFullDay, record.ChildType)
}

func TestApplyChildPatchEmptyIsNoop(t *testing.T) {
	record := &models.Child{ID: 101, Name: "Lina", Age: 4, HasLeft: false}
	before := *record

	ApplyChildPatch(record, dto.UpdateChild{})
	assert.Equal(t, before, *record)
}

func TestChildToDTOCopiesEverything(t *testing.T) {
	now := time.Now().UTC()
	record := &models.Child{
		ID: 101, Name: "Lina", BirthDate: now, Age: 4, Phone: "0790000000",
		Address: "Amman", FatherJob: "Engineer", MotherJob: "Teacher",
		Notes: "quiet", Problems: "", ChildImage: "images/children/lina.jpg",
		ChildType: models.ChildTypeSession, HasLeft: true, IsDeleted: false,
		CreatedAt: now, UpdatedAt: now,
	}

	out := ChildToDTO(record)
	assert.Equal(t, record.ID, out.ID)
	assert.Equal(t, record.Name, out.Name)
	assert.Equal(t, record.ChildType, out.ChildType)
	assert.Equal(t, record.HasLeft, out.HasLeft)
	assert.Equal(t, record.ChildImage, out.ChildImage)
	assert.Equal(t, record.CreatedAt, out.CreatedAt)
}
