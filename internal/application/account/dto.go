package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountView is the read model returned by account queries
type AccountView struct {
	AccountID       uuid.UUID       `json:"account_id"`
	AccountNumber   string          `json:"account_number"`
	PrimaryHolderID uuid.UUID       `json:"primary_holder_id"`
	JointHolderID   uuid.UUID       `json:"joint_holder_id"`
	Balance         decimal.Decimal `json:"balance"`
	Status          string          `json:"status"`
	OpenedAt        time.Time       `json:"opened_at"`
}

// BalanceView is the read model returned by balance queries
type BalanceView struct {
	AccountID     uuid.UUID       `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	AsOf          time.Time       `json:"as_of"`
}
