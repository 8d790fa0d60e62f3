package provisioning

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/corebank/backend/internal/domain/customer"
	"github.com/corebank/backend/internal/infrastructure/telemetry"
)

// Workflow provisions a joint account for two parties identified by national
// identity number. It resolves both parties, classifies the pairing and runs
// the matching call sequence. One invocation performs at most one account
// opening and at most one customer creation per party.
type Workflow struct {
	resolver *IdentityResolver
	executor *Executor
}

// NewWorkflow creates a new Workflow
func NewWorkflow(directory CustomerDirectory, issuer CredentialIssuer, ledger AccountLedger) *Workflow {
	return &Workflow{
		resolver: NewIdentityResolver(directory),
		executor: NewExecutor(directory, issuer, ledger),
	}
}

// ProvisionJointAccount runs the full workflow for one request. Both parties
// are resolved concurrently; no write is issued until validation and
// resolution have fully succeeded.
func (w *Workflow) ProvisionJointAccount(ctx context.Context, req ProvisioningRequest) (*ProvisioningResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "provisioning", "provision_joint_account")
	defer span.End()

	if err := validateRequest(req); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	party1, party2, err := w.resolveParties(ctx, req)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	scenario := Classify(party1, party2)
	telemetry.SetAttributes(span, telemetry.SpanAttrScenario, string(scenario))

	if scenario == ScenarioInvalidSameParty {
		err := newValidationError(fmt.Sprintf("both parties resolve to the same customer %s", party1.CustomerID))
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := validateProfiles(req, party1, party2); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result, err := w.executor.Execute(ctx, scenario, req, party1, party2)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrAccountNumber, result.AccountNumber)
	return result, nil
}

// resolveParties looks up both identity numbers concurrently. A failed lookup
// is attributed to the party whose lookup failed.
func (w *Workflow) resolveParties(ctx context.Context, req ProvisioningRequest) (ResolvedParty, ResolvedParty, error) {
	var party1, party2 ResolvedParty

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := w.resolver.Resolve(gctx, req.Party1.IdentityNumber)
		if err != nil {
			return newResolutionError(1, err)
		}
		party1 = p
		return nil
	})
	g.Go(func() error {
		p, err := w.resolver.Resolve(gctx, req.Party2.IdentityNumber)
		if err != nil {
			return newResolutionError(2, err)
		}
		party2 = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return ResolvedParty{}, ResolvedParty{}, err
	}
	return party1, party2, nil
}

func validateRequest(req ProvisioningRequest) error {
	if req.Party1.IdentityNumber == "" {
		return newValidationError("party1 identity number is required")
	}
	if req.Party2.IdentityNumber == "" {
		return newValidationError("party2 identity number is required")
	}
	if err := customer.ValidateIdentityNumber(req.Party1.IdentityNumber); err != nil {
		return newValidationError(fmt.Sprintf("party1: %v", err))
	}
	if err := customer.ValidateIdentityNumber(req.Party2.IdentityNumber); err != nil {
		return newValidationError(fmt.Sprintf("party2: %v", err))
	}
	if normalizeIdentity(req.Party1.IdentityNumber) == normalizeIdentity(req.Party2.IdentityNumber) {
		return newValidationError("both parties share the same identity number")
	}
	if !req.InitialBalance.IsPositive() {
		return newValidationError("initial balance must be positive")
	}
	return nil
}

// validateProfiles ensures every party that needs to be created carries a
// profile, before any write is issued.
func validateProfiles(req ProvisioningRequest, party1, party2 ResolvedParty) error {
	if !party1.Exists() && req.Party1.Profile == nil {
		return newValidationError("party1 is not an existing customer and requires a profile")
	}
	if !party2.Exists() && req.Party2.Profile == nil {
		return newValidationError("party2 is not an existing customer and requires a profile")
	}
	return nil
}
