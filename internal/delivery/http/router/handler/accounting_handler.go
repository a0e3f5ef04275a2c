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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AccountingHandlerParams holds dependencies for AccountingHandler, injected by Fx.
type AccountingHandlerParams struct {
	fx.In

	AccountingUC usecase.AccountingUsecase
	Logger       *slog.Logger
}

// AccountingHandler serves categories, expenses and the balance summary.
type AccountingHandler struct {
	accountingUC usecase.AccountingUsecase
	logger       *slog.Logger
}

// NewAccountingHandler is the constructor for AccountingHandler.
func NewAccountingHandler(params AccountingHandlerParams) *AccountingHandler {
	return &AccountingHandler{
		accountingUC: params.AccountingUC,
		logger:       params.Logger,
	}
}

// ExpenseRequest is the full expense body used by create and update.
type ExpenseRequest struct {
	CategoryID  uuid.UUID       `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=500"`
	Date        Date            `json:"date"`
	IsIncome    bool            `json:"is_income"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

type ExpenseResponse struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	CategoryID  uuid.UUID         `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Amount      Money             `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	IsIncome    bool              `json:"is_income"`
	CreatedAt   time.Time         `json:"created_at"`
}

type SummaryResponse struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Balance Money `json:"balance"`
}

// ListCategories is public. It seeds the default categories on first use.
func (h *AccountingHandler) ListCategories(c echo.Context) error {
	categories, err := h.accountingUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, newCategoryResponse(category))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *AccountingHandler) ListExpenses(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	expenses, err := h.accountingUC.ListExpenses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		resp = append(resp, newExpenseResponse(expense))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *AccountingHandler) CreateExpense(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	input, err := bindExpense(c)
	if err != nil {
		return err
	}

	expense, err := h.accountingUC.CreateExpense(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseResponse(expense))
}

// UpdateExpense replaces every field of the expense.
func (h *AccountingHandler) UpdateExpense(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathID(c, "id", domainerrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	input, err := bindExpense(c)
	if err != nil {
		return err
	}

	expense, err := h.accountingUC.UpdateExpense(c.Request().Context(), userID, expenseID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseResponse(expense))
}

func (h *AccountingHandler) DeleteExpense(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathID(c, "id", domainerrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	if err := h.accountingUC.DeleteExpense(c.Request().Context(), userID, expenseID); err != nil {
		return errors.WithStack(err)
	}

	return deleted(c, "Expense")
}

// Summary returns income, expense and balance of the caller.
func (h *AccountingHandler) Summary(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	summary, err := h.accountingUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SummaryResponse{
		Income:  Money(summary.Income),
		Expense: Money(summary.Expense),
		Balance: Money(summary.Balance),
	})
}

func bindExpense(c echo.Context) (*usecase.ExpenseInput, error) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return nil, invalidInput("Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.ExpenseInput{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date.Time,
		IsIncome:    req.IsIncome,
	}, nil
}

func newCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}

	return &CategoryResponse{ID: category.ID, Name: category.Name, Icon: category.Icon}
}

func newExpenseResponse(expense *entity.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		Category:    newCategoryResponse(expense.Category),
		Amount:      Money(expense.Amount()),
		Description: expense.Description,
		Date:        expense.Date,
		IsIncome:    expense.IsIncome,
		CreatedAt:   expense.CreatedAt,
	}
}
