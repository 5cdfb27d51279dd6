// Package mapper holds the hand-written model<->DTO conversions. One
// function triple per entity: read mapping, create mapping, and partial
// patch. Keeping these explicit means a renamed column breaks the build
// instead of silently dropping data.
package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

// ChildToDTO copies a persisted child into its read shape.
func ChildToDTO(record *models.Child) *dto.Child {
	return &dto.Child{
		ID:         record.ID,
		Name:       record.Name,
		BirthDate:  record.BirthDate,
		Age:        record.Age,
		Phone:      record.Phone,
		Address:    record.Address,
		FatherJob:  record.FatherJob,
		MotherJob:  record.MotherJob,
		Notes:      record.Notes,
		Problems:   record.Problems,
		ChildImage: record.ChildImage,
		ChildType:  record.ChildType,
		HasLeft:    record.HasLeft,
		IsDeleted:  record.IsDeleted,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

// NewChildFromCreate builds a not-yet-persisted child. The soft-delete flag
// is always false for a new registration and the type starts unclassified,
// whatever the caller sent.
func NewChildFromCreate(in dto.CreateChild) *models.Child {
	return &models.Child{
		ID:         in.ID,
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Age:        in.Age,
		Phone:      in.Phone,
		Address:    in.Address,
		FatherJob:  in.FatherJob,
		MotherJob:  in.MotherJob,
		Notes:      in.Notes,
		Problems:   in.Problems,
		ChildImage: in.ChildImage,
		ChildType:  models.ChildTypeNone,
		HasLeft:    in.HasLeft,
		IsDeleted:  false,
		CreatedAt:  in.CreatedAt,
	}
}

// ApplyChildPatch overwrites only the fields the caller set. Returns the
// record for chaining.
func ApplyChildPatch(record *models.Child, patch dto.UpdateChild) *models.Child {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		record.BirthDate = *patch.BirthDate
	}
	if patch.Age != nil {
		record.Age = *patch.Age
	}
	if patch.Phone != nil {
		record.Phone = *patch.Phone
	}
	if patch.Address != nil {
		record.Address = *patch.Address
	}
	if patch.FatherJob != nil {
		record.FatherJob = *patch.FatherJob
	}
	if patch.MotherJob != nil {
		record.MotherJob = *patch.MotherJob
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	if patch.Problems != nil {
		record.Problems = *patch.Problems
	}
	if patch.ChildImage != nil {
		record.ChildImage = *patch.ChildImage
	}
	if patch.HasLeft != nil {
		record.HasLeft = *patch.HasLeft
	}
	return record
}
