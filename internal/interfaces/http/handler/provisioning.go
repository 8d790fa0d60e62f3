package handler

import (
	"errors"
	"time"

	"github.com/corebank/backend/internal/application/provisioning"
	"github.com/corebank/backend/internal/interfaces/http/dto"
	"github.com/corebank/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateOfBirthLayout = "2006-01-02"

// ProvisioningHandler handles joint account provisioning HTTP requests
type ProvisioningHandler struct {
	BaseHandler
	workflow *provisioning.Workflow
}

// NewProvisioningHandler creates a new provisioning handler
func NewProvisioningHandler(workflow *provisioning.Workflow) *ProvisioningHandler {
	return &ProvisioningHandler{
		workflow: workflow,
	}
}

// ProvisionJointAccount godoc
// @Summary      Provision a joint account for two parties
// @Description  Resolves both parties against the customer directory, registers
// @Description  the ones that do not exist yet with login credentials, and opens
// @Description  a joint account held by both.
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Param        request body ProvisionJointAccountRequest true "Provisioning request"
// @Success      201 {object} dto.Response{data=ProvisionJointAccountResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /provisioning/joint-accounts [post]
func (h *ProvisioningHandler) ProvisionJointAccount(c *gin.Context) {
	var req ProvisionJointAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, "Invalid request body")
		return
	}

	initialBalance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "initial_balance", Message: "Must be a decimal amount"},
		})
		return
	}

	party1, err := toPartyInput(req.Party1)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "party1.profile.date_of_birth", Message: "Must be a date in YYYY-MM-DD format"},
		})
		return
	}
	party2, err := toPartyInput(req.Party2)
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "party2.profile.date_of_birth", Message: "Must be a date in YYYY-MM-DD format"},
		})
		return
	}

	result, err := h.workflow.ProvisionJointAccount(c.Request.Context(), provisioning.ProvisioningRequest{
		Party1:         party1,
		Party2:         party2,
		InitialBalance: initialBalance,
	})
	if err != nil {
		h.handleProvisioningError(c, err)
		return
	}

	h.Created(c, ProvisionJointAccountResponse{
		AccountID:     result.AccountID.String(),
		AccountNumber: result.AccountNumber,
		Party1:        toPartyOutcomeResponse(result.Party1),
		Party2:        toPartyOutcomeResponse(result.Party2),
	})
}

// handleProvisioningError renders the typed workflow error. Partial failures
// carry the customer IDs created before the sequence stopped so callers can
// reconcile them.
func (h *ProvisioningHandler) handleProvisioningError(c *gin.Context, err error) {
	var provErr *provisioning.Error
	if !errors.As(err, &provErr) {
		h.HandleError(c, err)
		return
	}

	code := dto.NormalizeErrorCode(provErr.Code)
	statusCode := dto.GetHTTPStatus(code)

	errorInfo := &dto.ErrorInfo{
		Code:      code,
		Message:   provErr.Message,
		RequestID: getRequestID(c),
	}

	if provErr.Party != 0 || provErr.Step != "" || len(provErr.CreatedCustomerIDs) > 0 {
		detail := &dto.ProvisioningErrorDetail{
			Party: provErr.Party,
			Step:  provErr.Step,
		}
		for _, id := range provErr.CreatedCustomerIDs {
			detail.CreatedCustomerIDs = append(detail.CreatedCustomerIDs, id.String())
		}
		errorInfo.Provisioning = detail
	}

	c.JSON(statusCode, dto.Response{
		Success: false,
		Error:   errorInfo,
	})
}

func toPartyInput(req PartyRequest) (provisioning.PartyInput, error) {
	input := provisioning.PartyInput{
		IdentityNumber: req.IdentityNumber,
	}

	if req.Profile != nil {
		dob, err := time.Parse(dateOfBirthLayout, req.Profile.DateOfBirth)
		if err != nil {
			return provisioning.PartyInput{}, err
		}
		input.Profile = &provisioning.PartyProfile{
			FullName:    req.Profile.FullName,
			Address:     req.Profile.Address,
			Phone:       req.Profile.Phone,
			DateOfBirth: dob,
		}
	}

	return input, nil
}

func toPartyOutcomeResponse(outcome provisioning.PartyOutcome) PartyOutcomeResponse {
	resp := PartyOutcomeResponse{
		CustomerID:     outcome.CustomerID.String(),
		IdentityNumber: outcome.IdentityNumber,
	}
	if outcome.Credentials != nil {
		resp.Credentials = &NewCustomerCredentialsResponse{
			Username: outcome.Credentials.Username,
			Password: outcome.Credentials.Password,
		}
	}
	return resp
}
