package handler

import (
	"net/http"
	"time"

	"floradesk/internal/delivery/http/response"
	"floradesk/internal/domain/entity"
	"floradesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order management handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderRequest struct {
	UserID        int64  `json:"userId" validate:"required,gt=0"`
	ServiceID     *int64 `json:"serviceId"`
	Status        string `json:"status" validate:"required,oneof=Pending Completed Canceled"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=Pending Completed Failed"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	Notes         string `json:"notes"`
	OrderDate     string `json:"orderDate" validate:"required"`
	DeliveryDate  string `json:"deliveryDate"`
}

type orderView struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	ServiceName   string  `json:"serviceName,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
	TotalPrice    float64 `json:"totalPrice"`
	Notes         string  `json:"notes,omitempty"`
	OrderDate     string  `json:"orderDate"`
	DeliveryDate  string  `json:"deliveryDate,omitempty"`
}

func toOrderView(o *entity.Order) orderView {
	view := orderView{
		ID:            o.ID,
		UserID:        o.UserID,
		ClientName:    o.ClientName,
		ClientEmail:   o.ClientEmail,
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		TotalPrice:    o.TotalPrice,
		Notes:         o.Notes,
		OrderDate:     o.OrderDate.Format(dateLayout),
	}
	if o.DeliveryDate != nil {
		view.DeliveryDate = o.DeliveryDate.Format(dateLayout)
	}

	return view
}

func (req *orderRequest) dates() (time.Time, *time.Time, error) {
	orderDate, err := parseDate(req.OrderDate, "orderDate")
	if err != nil {
		return time.Time{}, nil, err
	}

	deliveryDate, err := parseOptionalDate(req.DeliveryDate, "deliveryDate")
	if err != nil {
		return time.Time{}, nil, err
	}

	return orderDate, deliveryDate, nil
}

// Create handles order creation.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	orderDate, deliveryDate, err := req.dates()
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Create(c.Request().Context(), actor, &usecase.CreateOrderInput{
		UserID:        req.UserID,
		ServiceID:     req.ServiceID,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order created successfully")
}

// Update handles order edits.
func (h *OrderHandler) Update(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := idParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	orderDate, deliveryDate, err := req.dates()
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Update(c.Request().Context(), actor, &usecase.UpdateOrderInput{
		ID:            id,
		UserID:        req.UserID,
		ServiceID:     req.ServiceID,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order updated successfully")
}

// Delete handles order removal.
func (h *OrderHandler) Delete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := idParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// Get handles fetching one order.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// List handles listing orders, optionally bounded by ?from= and ?to= dates.
func (h *OrderHandler) List(c echo.Context) error {
	from, err := dateQuery(c, "from")
	if err != nil {
		return errors.WithStack(err)
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.uc.List(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return response.Success(c, http.StatusOK, views, "")
}
