package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/MikeRez0/payopt/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type AllocationHandler struct {
	Handler
	service port.Service
}

func NewAllocationHandler(service port.Service, logger *zap.Logger) (*AllocationHandler, error) {
	return &AllocationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderReq struct {
	ID         string          `json:"orderId" binding:"required"`
	TotalValue decimal.Decimal `json:"totalOrderValue"`
	Promotions []string        `json:"promotions"`
}

type paymentMethodReq struct {
	ID       string          `json:"id" binding:"required"`
	Discount decimal.Decimal `json:"discount"`
	Limit    decimal.Decimal `json:"limit"`
}

type allocateReq struct {
	Orders         []orderReq         `json:"orders" binding:"dive"`
	PaymentMethods []paymentMethodReq `json:"paymentMethods" binding:"dive"`
}

func (r allocateReq) toDomain() ([]domain.Order, []domain.PaymentMethod, error) {
	if len(r.Orders) == 0 {
		return nil, nil, domain.ErrEmptyBatch
	}

	orders := make([]domain.Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		order := domain.Order{ID: o.ID, TotalValue: o.TotalValue, Promotions: o.Promotions}
		if err := order.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
		}
		orders = append(orders, order)
	}

	methods := make([]domain.PaymentMethod, 0, len(r.PaymentMethods))
	for _, m := range r.PaymentMethods {
		method := domain.PaymentMethod{ID: m.ID, Discount: m.Discount, Limit: m.Limit}
		if err := method.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
		}
		methods = append(methods, method)
	}
	return orders, methods, nil
}

type planResp struct {
	OrderID      string    `json:"orderId"`
	MethodID     string    `json:"methodId"`
	TotalValue   jsonMoney `json:"totalOrderValue"`
	PointsAmount jsonMoney `json:"pointsAmount"`
	CashAmount   jsonMoney `json:"cashAmount"`
	Discount     jsonMoney `json:"discount"`
	FinalAmount  jsonMoney `json:"finalAmount"`
	Phase        string    `json:"phase"`
}

type allocationResp struct {
	RunID     string               `json:"runId"`
	CreatedAt time.Time            `json:"createdAt"`
	Orders    int                  `json:"orders"`
	Plans     []planResp           `json:"plans"`
	Summary   map[string]jsonMoney `json:"summary"`
	Unpaid    []string             `json:"unpaid"`
}

func newAllocationResp(a *domain.Allocation) allocationResp {
	resp := allocationResp{
		RunID:     a.RunID.String(),
		CreatedAt: a.CreatedAt,
		Orders:    a.OrderCount,
		Plans:     make([]planResp, 0, len(a.Plans)),
		Summary:   make(map[string]jsonMoney, len(a.Summary)),
		Unpaid:    make([]string, 0, len(a.Unpaid)),
	}
	for _, p := range a.Plans {
		resp.Plans = append(resp.Plans, planResp{
			OrderID:      p.OrderID,
			MethodID:     p.MethodID,
			TotalValue:   jsonMoney(p.TotalValue),
			PointsAmount: jsonMoney(p.PointsAmount),
			CashAmount:   jsonMoney(p.CashAmount),
			Discount:     jsonMoney(p.Discount),
			FinalAmount:  jsonMoney(p.FinalAmount),
			Phase:        string(p.Phase),
		})
	}
	for id, amount := range a.Summary {
		resp.Summary[id] = jsonMoney(amount)
	}
	resp.Unpaid = append(resp.Unpaid, a.Unpaid...)
	return resp
}

func (ah *AllocationHandler) CreateAllocation(ctx *gin.Context) {
	var req allocateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	orders, methods, err := req.toDomain()
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	allocation, err := ah.service.Allocate(ctx, orders, methods)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessWithStatus(ctx, newAllocationResp(allocation), http.StatusCreated)
}

func (ah *AllocationHandler) GetAllocation(ctx *gin.Context) {
	runID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	allocation, err := ah.service.GetAllocation(ctx, runID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newAllocationResp(allocation))
}
