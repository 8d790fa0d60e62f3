package models

import (
	"time"

	"github.com/corebank/backend/internal/domain/credential"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LoginModel is the persistence model for the Login domain entity.
// Only the bcrypt hash of the password is stored.
type LoginModel struct {
	AggregateModel
	CustomerID   uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_logins_customer_id"`
	Username     string                 `gorm:"type:varchar(100);not null;uniqueIndex:idx_logins_username"`
	PasswordHash string                 `gorm:"type:varchar(100);not null"`
	Status       credential.LoginStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time             `gorm:""`
}

// TableName returns the table name for GORM
func (LoginModel) TableName() string {
	return "logins"
}

// ToDomain converts the persistence model to a domain Login entity.
func (m *LoginModel) ToDomain() *credential.Login {
	return &credential.Login{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		CustomerID:   m.CustomerID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Status:       m.Status,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain Login entity.
func (m *LoginModel) FromDomain(l *credential.Login) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.CustomerID = l.CustomerID
	m.Username = l.Username
	m.PasswordHash = l.PasswordHash
	m.Status = l.Status
	m.LastLoginAt = l.LastLoginAt
}

// LoginModelFromDomain creates a new persistence model from a domain Login entity.
func LoginModelFromDomain(l *credential.Login) *LoginModel {
	m := &LoginModel{}
	m.FromDomain(l)
	return m
}
