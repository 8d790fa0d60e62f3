package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/corebank/backend/internal/domain/credential"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLoginRepository implements LoginRepository using GORM
type GormLoginRepository struct {
	db *gorm.DB
}

// NewGormLoginRepository creates a new GormLoginRepository
func NewGormLoginRepository(db *gorm.DB) *GormLoginRepository {
	return &GormLoginRepository{db: db}
}

// FindByID finds a login by its ID
func (r *GormLoginRepository) FindByID(ctx context.Context, id uuid.UUID) (*credential.Login, error) {
	var model models.LoginModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a login by username
func (r *GormLoginRepository) FindByUsername(ctx context.Context, username string) (*credential.Login, error) {
	var model models.LoginModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerID finds the login belonging to a customer
func (r *GormLoginRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*credential.Login, error) {
	var model models.LoginModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByUsername checks whether a username is already taken
func (r *GormLoginRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LoginModel{}).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a login.
// Unique indexes on username and customer_id guard against duplicates.
func (r *GormLoginRepository) Save(ctx context.Context, l *credential.Login) error {
	model := models.LoginModelFromDomain(l)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}
