package handler

import (
	"payment-reconciler/internal/adapter/http/dto"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"
	"payment-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator read API.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Login handles POST /api/v1/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.adminSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// GetEvent handles GET /api/v1/admin/events/:id.
func (h *AdminHandler) GetEvent(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	rec, err := h.adminSvc.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// ListPayouts handles GET /api/v1/admin/payouts?expert_id=...&limit=...
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	var q dto.PayoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payouts, err := h.adminSvc.ListPayouts(c.Request.Context(), q.ExpertID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutListResponse{
		ExpertID: q.ExpertID,
		Payouts:  payouts,
		Count:    len(payouts),
	})
}

// GetTransfer handles GET /api/v1/admin/transfers/:id.
func (h *AdminHandler) GetTransfer(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	t, err := h.adminSvc.GetTransfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// GetTransaction handles GET /api/v1/admin/transactions/:id.
func (h *AdminHandler) GetTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	tx, err := h.adminSvc.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

func bindID(c *gin.Context) (string, bool) {
	var p dto.ResourcePath
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", false
	}
	return p.ID, true
}
