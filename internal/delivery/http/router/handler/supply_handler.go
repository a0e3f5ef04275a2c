package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cbx/internal/delivery/http/response"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupplyHandlerParams holds dependencies for SupplyHandler, injected by Fx.
type SupplyHandlerParams struct {
	fx.In

	SupplyUC usecase.SupplyUsecase
	Logger   *slog.Logger
}

// SupplyHandler serves the household supply list.
type SupplyHandler struct {
	supplyUC usecase.SupplyUsecase
	logger   *slog.Logger
}

// NewSupplyHandler is the constructor for SupplyHandler.
func NewSupplyHandler(params SupplyHandlerParams) *SupplyHandler {
	return &SupplyHandler{
		supplyUC: params.SupplyUC,
		logger:   params.Logger,
	}
}

type CreateSupplyItemRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Category string `json:"category" validate:"max=100"`
	Quantity *int   `json:"quantity"`
	Status   string `json:"status"`
}

type UpdateSupplyItemRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Quantity *int    `json:"quantity"`
	Status   *string `json:"status"`
}

type SupplyItemResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *SupplyHandler) ListItems(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	items, err := h.supplyUC.ListItems(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*SupplyItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newSupplyItemResponse(item))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *SupplyHandler) CreateItem(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req CreateSupplyItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supply item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.supplyUC.CreateItem(c.Request().Context(), userID, &usecase.CreateSupplyItemInput{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSupplyItemResponse(item))
}

// UpdateItem takes ?status=... or a partial JSON body.
func (h *SupplyHandler) UpdateItem(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id", domainerrors.ErrSupplyItemNotFound)
	if err != nil {
		return err
	}

	input := &usecase.UpdateSupplyItemInput{}
	if status := c.QueryParam("status"); status != "" {
		input.Status = &status
	} else {
		var req UpdateSupplyItemRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid supply item input")
		}
		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}

		input.Name = req.Name
		input.Category = req.Category
		input.Quantity = req.Quantity
		input.Status = req.Status
	}

	item, err := h.supplyUC.UpdateItem(c.Request().Context(), userID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSupplyItemResponse(item))
}

func (h *SupplyHandler) DeleteItem(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id", domainerrors.ErrSupplyItemNotFound)
	if err != nil {
		return err
	}

	if err := h.supplyUC.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return deleted(c, "Item")
}

func newSupplyItemResponse(item *entity.SupplyItem) *SupplyItemResponse {
	return &SupplyItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
	}
}
