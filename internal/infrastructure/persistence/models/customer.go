package models

import (
	"time"

	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/domain/shared"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	IdentityNumber string                  `gorm:"type:varchar(20);not null;uniqueIndex:idx_customers_identity_number"`
	FullName       string                  `gorm:"type:varchar(200);not null"`
	Address        string                  `gorm:"type:text"`
	Phone          string                  `gorm:"type:varchar(50);index"`
	DateOfBirth    time.Time               `gorm:""`
	Status         customer.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	c := &customer.Customer{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		IdentityNumber: m.IdentityNumber,
		FullName:       m.FullName,
		Address:        m.Address,
		Phone:          m.Phone,
		DateOfBirth:    m.DateOfBirth,
		Status:         m.Status,
	}
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.IdentityNumber = c.IdentityNumber
	m.FullName = c.FullName
	m.Address = c.Address
	m.Phone = c.Phone
	m.DateOfBirth = c.DateOfBirth
	m.Status = c.Status
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
