// Package operationdelivery manages delivery layer of operations.
package operationdelivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by operation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package operationdelivery
type Service interface {
	Apply(ctx context.Context, id string, diff map[string]string) error
}

// Handler facilitates operation delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns operation handler.
func NewHandler(ops Service) *Handler {
	return &Handler{
		service: ops,
	}
}

// Put handles http request to apply an operation.
//
// The body maps account ids to signed amounts, e.g. {"1": "USD-1", "2": "USD 1.00"}.
func (h *Handler) Put(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var diff map[string]string
	if err := gctx.ShouldBindJSON(&diff); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(web.BindingError(err)))

		return
	}

	id := strings.TrimPrefix(gctx.Param("id"), "/")

	if err := h.service.Apply(ctx, id, diff); err != nil {
		gctx.JSON(web.StatusCode(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, gin.H{})
}
