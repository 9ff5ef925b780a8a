// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/backoffice/internal/domain/entity"
)

// MemberModel represents the members table in the database.
type MemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	Paid      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MemberModel.
func (MemberModel) TableName() string {
	return "members"
}

// ToEntity converts a MemberModel to a domain Member entity.
func (m *MemberModel) ToEntity() *entity.Member {
	return &entity.Member{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Paid:      m.Paid,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MemberFromEntity creates a MemberModel from a domain Member entity.
func MemberFromEntity(member *entity.Member) *MemberModel {
	return &MemberModel{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Paid:      member.Paid,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
