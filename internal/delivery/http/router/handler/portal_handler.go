package handler

import (
	"net/http"

	"cbx/internal/delivery/http/response"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PortalHandler serves the dashboard.
type PortalHandler struct {
	portalUC usecase.PortalUsecase
}

// NewPortalHandler is the constructor for PortalHandler, injected by Fx.
func NewPortalHandler(portalUC usecase.PortalUsecase) *PortalHandler {
	return &PortalHandler{portalUC: portalUC}
}

type PortalModuleResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Notifications int64  `json:"notifications"`
}

type PortalStatsResponse struct {
	Greeting string                  `json:"greeting"`
	Modules  []*PortalModuleResponse `json:"modules"`
}

func (h *PortalHandler) Stats(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	stats, err := h.portalUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	modules := make([]*PortalModuleResponse, 0, len(stats.Modules))
	for _, module := range stats.Modules {
		modules = append(modules, &PortalModuleResponse{
			ID:            module.ID,
			Name:          module.Name,
			Status:        module.Status,
			Notifications: module.Notifications,
		})
	}

	return response.Success(c, http.StatusOK, &PortalStatsResponse{
		Greeting: stats.Greeting,
		Modules:  modules,
	})
}
