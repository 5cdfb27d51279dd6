package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

// UserToDTO copies a persisted account into its read shape. The hash stays
// behind.
func UserToDTO(record *models.User) *dto.User {
	return &dto.User{
		ID:        record.ID,
		Username:  record.Username,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// NewUserFromCreate builds a not-yet-persisted account. The service hashes
// the password and fills PasswordHash before this record is stored.
func NewUserFromCreate(in dto.CreateUser, passwordHash string) *models.User {
	return &models.User{
		Username:     in.Username,
		PasswordHash: passwordHash,
		Role:         in.Role,
	}
}

// ApplyUserPatch overwrites only the fields the caller set.
func ApplyUserPatch(record *models.User, patch dto.UpdateUser) *models.User {
	if patch.Username != nil {
		record.Username = *patch.Username
	}
	if patch.Role != nil {
		record.Role = *patch.Role
	}
	return record
}
