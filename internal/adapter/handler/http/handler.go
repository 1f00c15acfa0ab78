package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:      http.StatusBadRequest,
	domain.ErrInputParse:      http.StatusBadRequest,
	domain.ErrEmptyBatch:      http.StatusBadRequest,
	domain.ErrArchiveDisabled: http.StatusNotImplemented,
}

// jsonMoney renders an amount as a two decimal string.
type jsonMoney decimal.Decimal

func (j jsonMoney) MarshalJSON() ([]byte, error) {
	return []byte(`"` + domain.Cents(decimal.Decimal(j)).String() + `"`), nil
}

type errorResp struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusFor(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleValidationError rejects a request that could not be decoded
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResp{Error: err.Error()})
}

// handleSuccessWithStatus sends data with the given status, or just the status when data is nil
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
