// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, id, currency string) error
	Get(ctx context.Context, id string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type createRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

// Create handles http request to create account.
//
// The route is expected to capture the account id as the catch-all parameter "id".
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(web.BindingError(err)))

		return
	}

	id := strings.TrimPrefix(gctx.Param("id"), "/")

	if err := h.service.Create(ctx, id, req.Currency); err != nil {
		gctx.JSON(web.StatusCode(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, gin.H{})
}

// Get handles http request to get account balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	id := strings.TrimPrefix(gctx.Param("id"), "/")

	acc, err := h.service.Get(ctx, id)
	if err != nil {
		gctx.JSON(web.StatusCode(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, balanceResponse{Balance: acc.Balance})
}
