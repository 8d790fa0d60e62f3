package provisioning

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Executor runs the per-scenario call sequence against the collaborators and
// assembles the unified result. Within one invocation every call is strictly
// sequential: each later call depends on an identifier produced earlier.
type Executor struct {
	directory CustomerDirectory
	issuer    CredentialIssuer
	ledger    AccountLedger
}

// NewExecutor creates a new Executor
func NewExecutor(directory CustomerDirectory, issuer CredentialIssuer, ledger AccountLedger) *Executor {
	return &Executor{
		directory: directory,
		issuer:    issuer,
		ledger:    ledger,
	}
}

// Execute runs the scenario's call sequence. Party order from the request is
// preserved in the result. On failure after a customer was created, the
// returned error is a partial failure carrying the created customer IDs; the
// ledger is never called after an earlier step failed.
func (e *Executor) Execute(ctx context.Context, scenario Scenario, req ProvisioningRequest, party1, party2 ResolvedParty) (*ProvisioningResult, error) {
	switch scenario {
	case ScenarioBothExisting:
		return e.executeBothExisting(ctx, req, party1, party2)
	case ScenarioBothNew:
		return e.executeBothNew(ctx, req)
	case ScenarioMixed:
		return e.executeMixed(ctx, req, party1, party2)
	default:
		// InvalidSameParty is rejected by the workflow before execution
		return nil, newValidationError(fmt.Sprintf("scenario %q cannot be executed", scenario))
	}
}

func (e *Executor) executeBothExisting(ctx context.Context, req ProvisioningRequest, party1, party2 ResolvedParty) (*ProvisioningResult, error) {
	ref, err := e.openAccount(ctx, party1.CustomerID, party2.CustomerID, req)
	if err != nil {
		// No customer was created this invocation, so this is a clean failure
		return nil, newLedgerError(err)
	}

	return &ProvisioningResult{
		AccountID:     ref.AccountID,
		AccountNumber: ref.AccountNumber,
		Party1:        PartyOutcome{CustomerID: party1.CustomerID, IdentityNumber: party1.IdentityNumber},
		Party2:        PartyOutcome{CustomerID: party2.CustomerID, IdentityNumber: party2.IdentityNumber},
	}, nil
}

func (e *Executor) executeBothNew(ctx context.Context, req ProvisioningRequest) (*ProvisioningResult, error) {
	id1, err := e.createCustomer(ctx, req.Party1)
	if err != nil {
		// Nothing was written yet; safe to retry the whole workflow
		return nil, newCreationError(1, err)
	}

	id2, err := e.createCustomer(ctx, req.Party2)
	if err != nil {
		return nil, newPartialFailureError(StepCreateCustomer, 2, []uuid.UUID{id1}, err)
	}

	created := []uuid.UUID{id1, id2}

	creds1, err := e.issueLogin(ctx, id1, req.Party1)
	if err != nil {
		return nil, newPartialFailureError(StepIssueLogin, 1, created, err)
	}

	creds2, err := e.issueLogin(ctx, id2, req.Party2)
	if err != nil {
		return nil, newPartialFailureError(StepIssueLogin, 2, created, err)
	}

	ref, err := e.openAccount(ctx, id1, id2, req)
	if err != nil {
		return nil, newPartialFailureError(StepOpenAccount, 0, created, err)
	}

	return &ProvisioningResult{
		AccountID:     ref.AccountID,
		AccountNumber: ref.AccountNumber,
		Party1:        PartyOutcome{CustomerID: id1, IdentityNumber: req.Party1.IdentityNumber, Credentials: creds1},
		Party2:        PartyOutcome{CustomerID: id2, IdentityNumber: req.Party2.IdentityNumber, Credentials: creds2},
	}, nil
}

func (e *Executor) executeMixed(ctx context.Context, req ProvisioningRequest, party1, party2 ResolvedParty) (*ProvisioningResult, error) {
	newIdx, newInput := 1, req.Party1
	existing := party2
	if party1.Exists() {
		newIdx, newInput = 2, req.Party2
		existing = party1
	}

	newID, err := e.createCustomer(ctx, newInput)
	if err != nil {
		return nil, newCreationError(newIdx, err)
	}

	creds, err := e.issueLogin(ctx, newID, newInput)
	if err != nil {
		return nil, newPartialFailureError(StepIssueLogin, newIdx, []uuid.UUID{newID}, err)
	}

	newOutcome := PartyOutcome{CustomerID: newID, IdentityNumber: newInput.IdentityNumber, Credentials: creds}
	existingOutcome := PartyOutcome{CustomerID: existing.CustomerID, IdentityNumber: existing.IdentityNumber}

	// Preserve party order from the request when opening the account
	first, second := newOutcome, existingOutcome
	if newIdx == 2 {
		first, second = existingOutcome, newOutcome
	}

	ref, err := e.openAccount(ctx, first.CustomerID, second.CustomerID, req)
	if err != nil {
		return nil, newPartialFailureError(StepOpenAccount, 0, []uuid.UUID{newID}, err)
	}

	return &ProvisioningResult{
		AccountID:     ref.AccountID,
		AccountNumber: ref.AccountNumber,
		Party1:        first,
		Party2:        second,
	}, nil
}

// createCustomer registers one new customer. It stops before writing if the
// invocation was already cancelled.
func (e *Executor) createCustomer(ctx context.Context, input PartyInput) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if input.Profile == nil {
		// The workflow verifies profile presence before any write
		return uuid.Nil, fmt.Errorf("profile is required for identity %s", input.IdentityNumber)
	}
	return e.directory.CreateCustomer(ctx, input.IdentityNumber, *input.Profile)
}

// issueLogin requests credentials for one new customer. Issuance is invoked
// at most once per customer per invocation; it is never retried here because
// a blind retry could orphan a generated credential set.
func (e *Executor) issueLogin(ctx context.Context, customerID uuid.UUID, input PartyInput) (*NewCustomerCredentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullName := ""
	if input.Profile != nil {
		fullName = input.Profile.FullName
	}

	issued, err := e.issuer.IssueLogin(ctx, customerID, fullName)
	if err != nil {
		return nil, err
	}

	return &NewCustomerCredentials{Username: issued.Username, Password: issued.Password}, nil
}

func (e *Executor) openAccount(ctx context.Context, primary, joint uuid.UUID, req ProvisioningRequest) (*AccountRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.ledger.OpenJointAccount(ctx, primary, joint, req.InitialBalance)
}
