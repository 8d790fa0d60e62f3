package provisioning

import "github.com/google/uuid"

// ResolvedParty is the outcome of resolving one identity number against the
// customer directory: either an existing customer or an unresolved identity.
// The identity number is immutable once resolved.
type ResolvedParty struct {
	existing       bool
	CustomerID     uuid.UUID
	FullName       string
	IdentityNumber string
}

// ExistingParty builds a ResolvedParty for a directory hit
func ExistingParty(customerID uuid.UUID, fullName, identityNumber string) ResolvedParty {
	return ResolvedParty{
		existing:       true,
		CustomerID:     customerID,
		FullName:       fullName,
		IdentityNumber: identityNumber,
	}
}

// UnresolvedParty builds a ResolvedParty for a directory miss
func UnresolvedParty(identityNumber string) ResolvedParty {
	return ResolvedParty{IdentityNumber: identityNumber}
}

// Exists reports whether the party resolved to an existing customer
func (p ResolvedParty) Exists() bool {
	return p.existing
}

// Scenario classifies a provisioning request by which parties already exist
type Scenario string

const (
	// ScenarioBothExisting means both parties are existing customers
	ScenarioBothExisting Scenario = "both_existing"
	// ScenarioBothNew means neither party exists yet
	ScenarioBothNew Scenario = "both_new"
	// ScenarioMixed means exactly one party exists
	ScenarioMixed Scenario = "mixed"
	// ScenarioInvalidSameParty means both parties resolved to the same customer
	ScenarioInvalidSameParty Scenario = "invalid_same_party"
)

// Classify derives the scenario from two resolved parties. It is pure,
// deterministic, and total over the four existing/unresolved combinations
// plus the same-customer case.
func Classify(a, b ResolvedParty) Scenario {
	switch {
	case a.Exists() && b.Exists():
		if a.CustomerID == b.CustomerID {
			return ScenarioInvalidSameParty
		}
		return ScenarioBothExisting
	case !a.Exists() && !b.Exists():
		return ScenarioBothNew
	default:
		return ScenarioMixed
	}
}
