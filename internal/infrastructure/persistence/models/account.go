package models

import (
	"time"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the joint Account domain entity.
type AccountModel struct {
	AggregateModel
	AccountNumber   string                `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_account_number"`
	PrimaryHolderID uuid.UUID             `gorm:"type:uuid;not null;index"`
	JointHolderID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Balance         decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status          account.AccountStatus `gorm:"type:varchar(20);not null;default:'active'"`
	OpenedAt        time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *account.Account {
	return &account.Account{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		AccountNumber:   m.AccountNumber,
		PrimaryHolderID: m.PrimaryHolderID,
		JointHolderID:   m.JointHolderID,
		Balance:         m.Balance,
		Status:          m.Status,
		OpenedAt:        m.OpenedAt,
	}
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *account.Account) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.AccountNumber = a.AccountNumber
	m.PrimaryHolderID = a.PrimaryHolderID
	m.JointHolderID = a.JointHolderID
	m.Balance = a.Balance
	m.Status = a.Status
	m.OpenedAt = a.OpenedAt
}

// AccountModelFromDomain creates a new persistence model from a domain Account entity.
func AccountModelFromDomain(a *account.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}
