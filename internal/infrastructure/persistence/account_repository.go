package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corebank/backend/internal/domain/account"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountNumberPrefix is the prefix for joint account numbers
const accountNumberPrefix = "JA"

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormAccountRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAccountNumber finds an account by its account number
func (r *GormAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*account.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("account_number = ?", strings.ToUpper(strings.TrimSpace(accountNumber))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByHolder finds all accounts held by the given customer
func (r *GormAccountRepository) FindByHolder(ctx context.Context, customerID uuid.UUID) ([]account.Account, error) {
	var accountModels []models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("primary_holder_id = ? OR joint_holder_id = ?", customerID, customerID).
		Order("opened_at DESC").
		Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]account.Account, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = *model.ToDomain()
	}
	return accounts, nil
}

// Save creates or updates an account. Pending domain events are written to
// the outbox in the same transaction when an outbox saver is configured.
func (r *GormAccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := models.AccountModelFromDomain(a)
	events := a.GetDomainEvents()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		if r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}

	a.ClearDomainEvents()
	return nil
}

// NextAccountNumber allocates the next unused account number from the
// database sequence. Numbers are never reused, even across restarts.
func (r *GormAccountRepository) NextAccountNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('account_number_seq')").
		Scan(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to allocate account number: %w", err)
	}
	return fmt.Sprintf("%s%08d", accountNumberPrefix, seq), nil
}

// Count returns the total number of accounts
func (r *GormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
