package provisioning

import (
	"fmt"

	"github.com/google/uuid"
)

// Error codes for the provisioning workflow
const (
	// CodeValidationFailed marks bad input, rejected before any write
	CodeValidationFailed = "VALIDATION_FAILED"
	// CodeResolutionFailed marks a directory lookup failure; no writes occurred
	CodeResolutionFailed = "RESOLUTION_FAILED"
	// CodeCreationFailed marks a customer creation failure with no sibling customer created
	CodeCreationFailed = "CREATION_FAILED"
	// CodePartialFailure marks an invocation that created customers but opened no account
	CodePartialFailure = "PARTIAL_FAILURE"
	// CodeLedgerFailed marks an account opening failure with no customer created this invocation
	CodeLedgerFailed = "LEDGER_FAILED"
)

// Workflow steps recorded on errors
const (
	StepResolve        = "resolve"
	StepCreateCustomer = "create_customer"
	StepIssueLogin     = "issue_login"
	StepOpenAccount    = "open_account"
)

// Error is the typed failure of a provisioning attempt. It records which
// party and step failed and, for partial failures, the customer IDs that were
// created before the sequence stopped, so a caller can reconcile manually.
type Error struct {
	Code               string
	Message            string
	Party              int // 1 or 2; 0 when not party-specific
	Step               string
	CreatedCustomerIDs []uuid.UUID
	Err                error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsPartial reports whether durable customer records were created even though
// the account was not opened
func (e *Error) IsPartial() bool {
	return e.Code == CodePartialFailure
}

func newValidationError(message string) *Error {
	return &Error{Code: CodeValidationFailed, Message: message}
}

func newResolutionError(party int, err error) *Error {
	return &Error{
		Code:    CodeResolutionFailed,
		Message: fmt.Sprintf("could not resolve party%d against the customer directory", party),
		Party:   party,
		Step:    StepResolve,
		Err:     err,
	}
}

func newCreationError(party int, err error) *Error {
	return &Error{
		Code:    CodeCreationFailed,
		Message: fmt.Sprintf("customer creation failed for party%d", party),
		Party:   party,
		Step:    StepCreateCustomer,
		Err:     err,
	}
}

func newPartialFailureError(step string, party int, created []uuid.UUID, err error) *Error {
	return &Error{
		Code:               CodePartialFailure,
		Message:            fmt.Sprintf("account was not opened but %d customer(s) were registered; contact support with the created customer IDs", len(created)),
		Party:              party,
		Step:               step,
		CreatedCustomerIDs: created,
		Err:                err,
	}
}

func newLedgerError(err error) *Error {
	return &Error{
		Code:    CodeLedgerFailed,
		Message: "account opening failed",
		Step:    StepOpenAccount,
		Err:     err,
	}
}
