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

// ActivityHandler holds dependencies for audit trail handlers.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

type activityView struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Role           string    `json:"role"`
	Action         string    `json:"action"`
	ActionDetails  string    `json:"actionDetails,omitempty"`
	TargetEntity   string    `json:"targetEntity,omitempty"`
	TargetEntityID int64     `json:"targetEntityId,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toActivityView(l *entity.ActivityLog) activityView {
	return activityView{
		ID:             l.ID,
		UserID:         l.UserID,
		Role:           l.Role,
		Action:         l.Action,
		ActionDetails:  l.ActionDetails,
		TargetEntity:   l.TargetEntity,
		TargetEntityID: l.TargetEntityID,
		Description:    l.Description,
		CreatedAt:      l.CreatedAt,
	}
}

// List returns the audit trail, newest entries first.
func (h *ActivityHandler) List(c echo.Context) error {
	logs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]activityView, 0, len(logs))
	for _, l := range logs {
		views = append(views, toActivityView(l))
	}

	return response.Success(c, http.StatusOK, views, "")
}
