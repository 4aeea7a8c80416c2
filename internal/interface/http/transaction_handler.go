package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/internal/application"
	"github.com/wiratama/expense-tracker-api/internal/interface/middleware"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
	"github.com/wiratama/expense-tracker-api/pkg/response"
	"github.com/wiratama/expense-tracker-api/pkg/validation"
)

type TransactionHandler struct {
	Svc    *application.TransactionService
	Logger *logrus.Logger
}

func NewTransactionHandler(svc *application.TransactionService, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{Svc: svc, Logger: logger}
}

// Amount is a pointer so that an explicit zero survives binding; required
// still rejects a missing field.
type createTransactionRequest struct {
	Text   string   `json:"text" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

type updateTransactionRequest struct {
	Text   *string  `json:"text"`
	Amount *float64 `json:"amount"`
}

func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	response.List(c, http.StatusOK, len(list), list)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apperr.Wrap(apperr.Validation, validation.Message(err), err))
		return
	}

	// The owner always comes from the authenticated caller; any owner
	// supplied in the body is ignored.
	t, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Text, *req.Amount)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	response.Data(c, http.StatusCreated, t)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apperr.Wrap(apperr.Validation, validation.Message(err), err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), application.UpdateInput{
		Text:   req.Text,
		Amount: req.Amount,
	})
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	response.Data(c, http.StatusOK, t)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id")); err != nil {
		middleware.Abort(c, err)
		return
	}
	response.Data(c, http.StatusOK, gin.H{})
}
