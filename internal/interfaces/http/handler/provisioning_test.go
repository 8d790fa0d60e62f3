package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corebank/backend/internal/application/provisioning"
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/interfaces/http/dto"
	"github.com/corebank/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	middleware.SetupValidator()
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) FindByIdentity(ctx context.Context, identityNumber string) (*provisioning.CustomerRecord, error) {
	args := m.Called(ctx, identityNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provisioning.CustomerRecord), args.Error(1)
}

func (m *MockDirectory) CreateCustomer(ctx context.Context, identityNumber string, profile provisioning.PartyProfile) (uuid.UUID, error) {
	args := m.Called(ctx, identityNumber, profile)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) IssueLogin(ctx context.Context, customerID uuid.UUID, fullName string) (*provisioning.IssuedCredentials, error) {
	args := m.Called(ctx, customerID, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provisioning.IssuedCredentials), args.Error(1)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) OpenJointAccount(ctx context.Context, primaryHolderID, jointHolderID uuid.UUID, initialBalance decimal.Decimal) (*provisioning.AccountRef, error) {
	args := m.Called(ctx, primaryHolderID, jointHolderID, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provisioning.AccountRef), args.Error(1)
}

type provisioningFixture struct {
	directory *MockDirectory
	issuer    *MockIssuer
	ledger    *MockLedger
	router    *gin.Engine
}

func newProvisioningFixture(t *testing.T) *provisioningFixture {
	t.Helper()

	f := &provisioningFixture{
		directory: new(MockDirectory),
		issuer:    new(MockIssuer),
		ledger:    new(MockLedger),
	}

	workflow := provisioning.NewWorkflow(f.directory, f.issuer, f.ledger)
	h := NewProvisioningHandler(workflow)

	f.router = gin.New()
	f.router.POST("/api/v1/provisioning/joint-accounts", h.ProvisionJointAccount)
	return f
}

func (f *provisioningFixture) post(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/provisioning/joint-accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func notFoundErr() error {
	return shared.ErrNotFound
}

func validProfile(name string) *PartyProfileRequest {
	return &PartyProfileRequest{
		FullName:    name,
		Address:     "12 Galle Road, Colombo",
		Phone:       "+94771234567",
		DateOfBirth: "1988-05-02",
	}
}

func TestProvisionJointAccount_MixedScenario(t *testing.T) {
	f := newProvisioningFixture(t)

	existingID := uuid.New()
	newID := uuid.New()
	accountID := uuid.New()

	f.directory.On("FindByIdentity", mock.Anything, "881234567V").Return(&provisioning.CustomerRecord{
		CustomerID:     existingID,
		IdentityNumber: "881234567V",
		FullName:       "Amara Silva",
	}, nil)
	f.directory.On("FindByIdentity", mock.Anything, "199012345678").Return(nil, notFoundErr())
	f.directory.On("CreateCustomer", mock.Anything, "199012345678", mock.Anything).Return(newID, nil)
	f.issuer.On("IssueLogin", mock.Anything, newID, "Nimal Perera").Return(&provisioning.IssuedCredentials{
		Username: "nimal.perera",
		Password: "s3cretPass!",
	}, nil)
	f.ledger.On("OpenJointAccount", mock.Anything, existingID, newID, mock.Anything).Return(&provisioning.AccountRef{
		AccountID:     accountID,
		AccountNumber: "JA00000042",
	}, nil)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "881234567V"},
		Party2:         PartyRequest{IdentityNumber: "199012345678", Profile: validProfile("Nimal Perera")},
		InitialBalance: "2500.00",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "JA00000042", data["account_number"])

	party1 := data["party1"].(map[string]interface{})
	assert.Equal(t, existingID.String(), party1["customer_id"])
	assert.Nil(t, party1["credentials"])

	party2 := data["party2"].(map[string]interface{})
	assert.Equal(t, newID.String(), party2["customer_id"])
	creds := party2["credentials"].(map[string]interface{})
	assert.Equal(t, "nimal.perera", creds["username"])
	assert.Equal(t, "s3cretPass!", creds["password"])

	f.ledger.AssertExpectations(t)
}

func TestProvisionJointAccount_InvalidIdentityNumber(t *testing.T) {
	f := newProvisioningFixture(t)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "12345"},
		Party2:         PartyRequest{IdentityNumber: "199012345678"},
		InitialBalance: "100.00",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "identity_number")
	f.directory.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything)
}

func TestProvisionJointAccount_SameIdentityRejected(t *testing.T) {
	f := newProvisioningFixture(t)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "881234567V"},
		Party2:         PartyRequest{IdentityNumber: "881234567v"},
		InitialBalance: "100.00",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), dto.ErrCodeValidation)
	f.directory.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything)
}

func TestProvisionJointAccount_MalformedBalance(t *testing.T) {
	f := newProvisioningFixture(t)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "881234567V"},
		Party2:         PartyRequest{IdentityNumber: "199012345678"},
		InitialBalance: "lots",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "initial_balance")
}

func TestProvisionJointAccount_PartialFailure(t *testing.T) {
	f := newProvisioningFixture(t)

	id1 := uuid.New()

	f.directory.On("FindByIdentity", mock.Anything, "881234567V").Return(nil, notFoundErr())
	f.directory.On("FindByIdentity", mock.Anything, "199012345678").Return(nil, notFoundErr())
	f.directory.On("CreateCustomer", mock.Anything, "881234567V", mock.Anything).Return(id1, nil)
	f.directory.On("CreateCustomer", mock.Anything, "199012345678", mock.Anything).Return(uuid.Nil, assert.AnError)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "881234567V", Profile: validProfile("Amara Silva")},
		Party2:         PartyRequest{IdentityNumber: "199012345678", Profile: validProfile("Nimal Perera")},
		InitialBalance: "500.00",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodePartialFailure, resp.Error.Code)
	require.NotNil(t, resp.Error.Provisioning)
	assert.Equal(t, 2, resp.Error.Provisioning.Party)
	assert.Equal(t, []string{id1.String()}, resp.Error.Provisioning.CreatedCustomerIDs)

	f.ledger.AssertNotCalled(t, "OpenJointAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProvisionJointAccount_LedgerFailureBothExisting(t *testing.T) {
	f := newProvisioningFixture(t)

	id1 := uuid.New()
	id2 := uuid.New()

	f.directory.On("FindByIdentity", mock.Anything, "881234567V").Return(&provisioning.CustomerRecord{
		CustomerID: id1, IdentityNumber: "881234567V", FullName: "Amara Silva",
	}, nil)
	f.directory.On("FindByIdentity", mock.Anything, "199012345678").Return(&provisioning.CustomerRecord{
		CustomerID: id2, IdentityNumber: "199012345678", FullName: "Nimal Perera",
	}, nil)
	f.ledger.On("OpenJointAccount", mock.Anything, id1, id2, mock.Anything).Return(nil, assert.AnError)

	rec := f.post(t, ProvisionJointAccountRequest{
		Party1:         PartyRequest{IdentityNumber: "881234567V"},
		Party2:         PartyRequest{IdentityNumber: "199012345678"},
		InitialBalance: "500.00",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeLedgerFailed, resp.Error.Code)
	require.NotNil(t, resp.Error.Provisioning)
	assert.Empty(t, resp.Error.Provisioning.CreatedCustomerIDs)
}
