package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursehub/backoffice/internal/application/adapter"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
	"github.com/coursehub/backoffice/internal/integration/persistence/model"
)

// memberDirectory implements the adapter.MemberDirectory interface.
type memberDirectory struct {
	db *gorm.DB
}

// NewMemberDirectory creates a new member directory instance.
func NewMemberDirectory(db *gorm.DB) adapter.MemberDirectory {
	return &memberDirectory{
		db: db,
	}
}

// MarkPaid flags a member as paid up.
func (d *memberDirectory) MarkPaid(ctx context.Context, memberID uuid.UUID) error {
	result := d.db.WithContext(ctx).Model(&model.MemberModel{}).
		Where("id = ?", memberID).
		Updates(map[string]interface{}{
			"paid":       true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerror.ClassifyStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMemberNotFound
	}
	return nil
}
