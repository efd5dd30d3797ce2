package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByGroupID struct {
	GroupID uuid.UUID
}

func (s ByGroupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("group_id = ?", s.GroupID)
}

// ByNameFold matches topics by name under ASCII-insensitive case folding,
// via the stored lower-cased name_key projection.
type ByNameFold struct {
	Name string
}

func (s ByNameFold) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name_key = ?", strings.ToLower(s.Name))
}
