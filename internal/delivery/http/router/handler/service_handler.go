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

// ServiceHandler holds dependencies for service catalog handlers.
type ServiceHandler struct {
	uc usecase.ServiceUsecase
}

// NewServiceHandler is the constructor for ServiceHandler, injected by Fx.
func NewServiceHandler(uc usecase.ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

type serviceRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive"`
	PricingModel string  `json:"pricingModel" validate:"required,oneof=fixed hourly milestone"`
	PricingUnit  string  `json:"pricingUnit" validate:"required"`
	DeliveryTime int     `json:"deliveryTime" validate:"required,gte=1"`
	Category     string  `json:"category"`
}

type serviceView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	PricingModel string    `json:"pricingModel"`
	PricingUnit  string    `json:"pricingUnit"`
	DeliveryTime int       `json:"deliveryTime"`
	Category     string    `json:"category,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toServiceView(s *entity.Service) serviceView {
	return serviceView{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Status:       string(s.Status),
		PricingModel: string(s.PricingModel),
		PricingUnit:  s.PricingUnit,
		DeliveryTime: s.DeliveryTime,
		Category:     s.Category,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// Create handles service creation.
func (h *ServiceHandler) Create(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.Create(c.Request().Context(), actor, &usecase.CreateServiceInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Status:       req.Status,
		PricingModel: req.PricingModel,
		PricingUnit:  req.PricingUnit,
		DeliveryTime: req.DeliveryTime,
		Category:     req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toServiceView(svc), "Service created successfully")
}

// Update handles service edits.
func (h *ServiceHandler) Update(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := idParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.Update(c.Request().Context(), actor, &usecase.UpdateServiceInput{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Status:       req.Status,
		PricingModel: req.PricingModel,
		PricingUnit:  req.PricingUnit,
		DeliveryTime: req.DeliveryTime,
		Category:     req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceView(svc), "Service updated successfully")
}

// Delete handles service removal. Services referenced by orders come back as
// a 409 conflict.
func (h *ServiceHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}

// Get handles fetching one service.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceView(svc), "")
}

// List handles listing the service catalog.
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]serviceView, 0, len(services))
	for _, s := range services {
		views = append(views, toServiceView(s))
	}

	return response.Success(c, http.StatusOK, views, "")
}
