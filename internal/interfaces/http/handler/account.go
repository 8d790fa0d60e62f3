package handler

import (
	appaccount "github.com/corebank/backend/internal/application/account"
	"github.com/corebank/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account query HTTP requests
type AccountHandler struct {
	BaseHandler
	accountService *appaccount.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *appaccount.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetByID godoc
// @Summary      Get account by ID
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID"
// @Success      200 {object} dto.Response{data=appaccount.AccountView}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounts/{id} [get]
func (h *AccountHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	view, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// GetByNumber godoc
// @Summary      Get account by account number
// @Tags         accounts
// @Produce      json
// @Param        number path string true "Account number"
// @Success      200 {object} dto.Response{data=appaccount.AccountView}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounts/number/{number} [get]
func (h *AccountHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Account number is required")
		return
	}

	view, err := h.accountService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// GetBalance godoc
// @Summary      Get account balance
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID"
// @Success      200 {object} dto.Response{data=appaccount.BalanceView}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounts/{id}/balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	view, err := h.accountService.GetBalance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// ListMine godoc
// @Summary      List the authenticated customer's accounts
// @Tags         accounts
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appaccount.AccountView}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounts [get]
func (h *AccountHandler) ListMine(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	views, err := h.accountService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// ListByCustomer godoc
// @Summary      List accounts held by a customer
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.Response{data=[]appaccount.AccountView}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id}/accounts [get]
func (h *AccountHandler) ListByCustomer(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customerID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	views, err := h.accountService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}
