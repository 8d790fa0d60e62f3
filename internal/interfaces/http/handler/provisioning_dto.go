package handler

// PartyProfileRequest carries the personal details required to register a
// party that does not exist as a customer yet
type PartyProfileRequest struct {
	FullName    string `json:"full_name" binding:"required,min=2,max=128"`
	Address     string `json:"address" binding:"required,max=256"`
	Phone       string `json:"phone" binding:"required,max=32"`
	DateOfBirth string `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
}

// PartyRequest identifies one party of the joint account request
type PartyRequest struct {
	IdentityNumber string               `json:"identity_number" binding:"required,nic"`
	Profile        *PartyProfileRequest `json:"profile,omitempty"`
}

// ProvisionJointAccountRequest is the request payload for joint account
// provisioning
type ProvisionJointAccountRequest struct {
	Party1         PartyRequest `json:"party1" binding:"required"`
	Party2         PartyRequest `json:"party2" binding:"required"`
	InitialBalance string       `json:"initial_balance" binding:"required"`
}

// NewCustomerCredentialsResponse carries one-time plaintext credentials for a
// customer created by this request. It is returned exactly once and never
// stored.
type NewCustomerCredentialsResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PartyOutcomeResponse describes the outcome for one party
type PartyOutcomeResponse struct {
	CustomerID     string                          `json:"customer_id"`
	IdentityNumber string                          `json:"identity_number"`
	Credentials    *NewCustomerCredentialsResponse `json:"credentials,omitempty"`
}

// ProvisionJointAccountResponse is the success payload of joint account
// provisioning
type ProvisionJointAccountResponse struct {
	AccountID     string               `json:"account_id"`
	AccountNumber string               `json:"account_number"`
	Party1        PartyOutcomeResponse `json:"party1"`
	Party2        PartyOutcomeResponse `json:"party2"`
}
