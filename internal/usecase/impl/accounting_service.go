package impl

import (
	"context"
	"log/slog"
	"strings"

	"cbx/config"
	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxAmount keeps amount*100 well inside int64.
var maxAmount = decimal.New(1, 13)

type accountingService struct {
	txManager         repository.TransactionManager
	defaultCategories []entity.Category
	logger            *slog.Logger
}

// AccountingServiceParams holds dependencies for AccountingService, injected by Fx.
type AccountingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountingService is the constructor for accountingService. Categories from
// accounting.defaultCategories replace the built-in list when configured.
func NewAccountingService(params AccountingServiceParams) usecase.AccountingUsecase {
	defaults := entity.DefaultCategories
	if params.Config != nil && len(params.Config.Accounting.DefaultCategories) > 0 {
		defaults = make([]entity.Category, 0, len(params.Config.Accounting.DefaultCategories))
		for _, c := range params.Config.Accounting.DefaultCategories {
			defaults = append(defaults, entity.Category{Name: c.Name, Icon: c.Icon})
		}
	}

	return &accountingService{
		txManager:         params.TxManager,
		defaultCategories: defaults,
		logger:            params.Logger,
	}
}

func (srv *accountingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories seeds and lists in one transaction.
func (srv *accountingService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.seedIfEmpty(ctx, repoFactory.CategoryRepo()); err != nil {
			return err
		}

		var listErr error
		categories, listErr = repoFactory.CategoryRepo().List(ctx)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *accountingService) EnsureDefaultCategories(ctx context.Context) (int, error) {
	var seeded int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var seedErr error
		seeded, seedErr = srv.seedIfEmpty(ctx, repoFactory.CategoryRepo())

		return seedErr
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to seed default categories")
	}

	return seeded, nil
}

// seedIfEmpty inserts the defaults only into an empty table. Concurrent seeders
// are absorbed by the unique name index.
func (srv *accountingService) seedIfEmpty(ctx context.Context, categoryRepo repository.CategoryRepository) (int, error) {
	count, err := categoryRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]*entity.Category, 0, len(srv.defaultCategories))
	for i := range srv.defaultCategories {
		c := srv.defaultCategories[i]
		categories = append(categories, &c)
	}

	if err := categoryRepo.CreateIfAbsent(ctx, categories); err != nil {
		return 0, err
	}

	after, err := categoryRepo.Count(ctx)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Seeded default categories", slog.Int64("count", after))

	return int(after), nil
}

func (srv *accountingService) ListExpenses(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenses []*entity.Expense

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		expenses, listErr = repoFactory.ExpenseRepo().ListByUser(ctx, userID)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

func (srv *accountingService) CreateExpense(ctx context.Context, userID uuid.UUID, input *usecase.ExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		AmountCents: entity.AmountToCents(input.Amount),
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date.UTC(),
		IsIncome:    input.IsIncome,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID)
		if err != nil {
			return err
		}

		if err := repoFactory.ExpenseRepo().Create(ctx, expense); err != nil {
			return err
		}
		expense.Category = category

		return nil
	})
	if err != nil {
		return nil, mapExpenseError(err, "failed to create expense")
	}

	srv.log(ctx).Debug("Expense created", slog.Any("expenseID", expense.ID), slog.Any("userID", userID))

	return expense, nil
}

func (srv *accountingService) UpdateExpense(ctx context.Context, userID, expenseID uuid.UUID, input *usecase.ExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Expense

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expenseRepo := repoFactory.ExpenseRepo()

		// Ownership first, so a foreign id is a 404 even with a bad category.
		if _, err := expenseRepo.FindByIDAndUser(ctx, expenseID, userID); err != nil {
			return err
		}

		if _, err := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			return err
		}

		if err := expenseRepo.Update(ctx, &entity.Expense{
			ID:          expenseID,
			UserID:      userID,
			CategoryID:  input.CategoryID,
			AmountCents: entity.AmountToCents(input.Amount),
			Description: strings.TrimSpace(input.Description),
			Date:        input.Date.UTC(),
			IsIncome:    input.IsIncome,
		}); err != nil {
			return err
		}

		var findErr error
		updated, findErr = expenseRepo.FindByIDAndUser(ctx, expenseID, userID)

		return findErr
	})
	if err != nil {
		return nil, mapExpenseError(err, "failed to update expense")
	}

	return updated, nil
}

func (srv *accountingService) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ExpenseRepo().DeleteByIDAndUser(ctx, expenseID, userID)
	})
	if err != nil {
		return mapExpenseError(err, "failed to delete expense")
	}

	srv.log(ctx).Debug("Expense deleted", slog.Any("expenseID", expenseID), slog.Any("userID", userID))

	return nil
}

// Summary converts the integer totals only at the end, so no float rounding creeps in.
func (srv *accountingService) Summary(ctx context.Context, userID uuid.UUID) (*usecase.SummaryOutput, error) {
	var summary entity.Summary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var sumErr error
		summary, sumErr = repoFactory.ExpenseRepo().SummarizeByUser(ctx, userID)

		return sumErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize expenses")
	}

	return &usecase.SummaryOutput{
		Income:  entity.CentsToAmount(summary.IncomeCents),
		Expense: entity.CentsToAmount(summary.ExpenseCents),
		Balance: entity.CentsToAmount(summary.BalanceCents()),
	}, nil
}

func validateExpenseInput(input *usecase.ExpenseInput) error {
	problems := fieldErrors{}

	if input.CategoryID == uuid.Nil {
		problems.add("category_id", "category_id is required")
	}
	if input.Amount.IsNegative() {
		problems.add("amount", "amount must not be negative")
	}
	if input.Amount.GreaterThan(maxAmount) {
		problems.add("amount", "amount is too large")
	}
	if strings.TrimSpace(input.Description) == "" {
		problems.add("description", "description is required")
	}
	if input.Date.IsZero() {
		problems.add("date", "date is required")
	}

	return problems.err()
}

func mapExpenseError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrExpenseNotFound):
		return errors.Wrap(domainerrors.ErrExpenseNotFound, message)
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}
