// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coursehub/backoffice/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Amount is stored signed; transfer legs carry the counterpart account in
// RelatedAccountID.
type TransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RelatedAccountID *uuid.UUID      `gorm:"type:uuid;index"`
	MemberID         *uuid.UUID      `gorm:"type:uuid;index"`
	Date             time.Time       `gorm:"not null;index"`
	Category         string          `gorm:"type:varchar(120);not null;index"`
	Description      string          `gorm:"type:varchar(255)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type             string          `gorm:"type:varchar(15);not null;index"`
	Status           string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Account        *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
	RelatedAccount *AccountModel `gorm:"foreignKey:RelatedAccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:               m.ID,
		AccountID:        m.AccountID,
		RelatedAccountID: m.RelatedAccountID,
		MemberID:         m.MemberID,
		Date:             m.Date,
		Category:         m.Category,
		Description:      m.Description,
		Amount:           m.Amount,
		Type:             entity.TransactionType(m.Type),
		Status:           entity.TransactionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:               transaction.ID,
		AccountID:        transaction.AccountID,
		RelatedAccountID: transaction.RelatedAccountID,
		MemberID:         transaction.MemberID,
		Date:             transaction.Date,
		Category:         transaction.Category,
		Description:      transaction.Description,
		Amount:           transaction.Amount,
		Type:             string(transaction.Type),
		Status:           string(transaction.Status),
		CreatedAt:        transaction.CreatedAt,
		UpdatedAt:        transaction.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}
