package postgres

import (
	"context"
	"testing"
	"time"

	"cbx/config"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, phone string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		Phone:        phone,
		FullName:     "Test User",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "Alice@Example.com", "0912345678")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, byte(7), user.ID[6]>>4, "ids are UUIDv7")
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "alice@example.com", byEmail.Email)

	byPhone, err := repo.FindByPhone(ctx, "0912345678")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_Duplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "bob@example.com", "0900000001")

	err := repo.Create(ctx, &entity.User{Email: "BOB@example.com", PasswordHash: "x", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	err = repo.Create(ctx, &entity.User{Email: "other@example.com", Phone: "0900000001", PasswordHash: "x", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicatePhone)

	// Missing identifiers are stored as NULL and never collide.
	createTestUser(t, db, "", "0900000002")
	createTestUser(t, db, "", "0900000003")
	createTestUser(t, db, "no-phone-1@example.com", "")
	createTestUser(t, db, "no-phone-2@example.com", "")
}

func TestUserRepository_FindActiveByLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	active := createTestUser(t, db, "carol@example.com", "0911111111")
	inactive := createTestUser(t, db, "dave@example.com", "")
	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	found, err := repo.FindActiveByLogin(ctx, "CAROL@example.com")
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)

	found, err = repo.FindActiveByLogin(ctx, "0911111111")
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)

	_, err = repo.FindActiveByLogin(ctx, "dave@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindActiveByLogin(ctx, "  ")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindActiveByLogin_ColumnsNeverCross(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Rows written around request validation: a phone that looks like an email
	// and an email that looks like a phone.
	squatter := createTestUser(t, db, "", "victim@example.com")
	victim := createTestUser(t, db, "victim@example.com", "")
	phoneOwner := createTestUser(t, db, "", "0933333333")
	createTestUser(t, db, "0933333333", "")

	found, err := repo.FindActiveByLogin(ctx, "victim@example.com")
	require.NoError(t, err)
	assert.Equal(t, victim.ID, found.ID)
	assert.NotEqual(t, squatter.ID, found.ID)

	found, err = repo.FindActiveByLogin(ctx, "0933333333")
	require.NoError(t, err)
	assert.Equal(t, phoneOwner.ID, found.ID)
}

func TestUserRepository_Update_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "erin@example.com", "0922222222")
	frank := createTestUser(t, db, "frank@example.com", "")

	frank.Phone = "0922222222"
	assert.ErrorIs(t, repo.Update(ctx, frank), repository.ErrDuplicatePhone)

	err := repo.Update(ctx, &entity.User{ID: uuid.New(), Email: "ghost@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestCategoryRepository_CreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	seed := func() []*entity.Category {
		categories := make([]*entity.Category, 0, len(entity.DefaultCategories))
		for i := range entity.DefaultCategories {
			c := entity.DefaultCategories[i]
			categories = append(categories, &c)
		}

		return categories
	}

	require.NoError(t, repo.CreateIfAbsent(ctx, seed()))
	require.NoError(t, repo.CreateIfAbsent(ctx, seed()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(entity.DefaultCategories)), count)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, len(entity.DefaultCategories))
	assert.Equal(t, "Entertainment", categories[0].Name, "listed by name")

	found, err := repo.FindByID(ctx, categories[0].ID)
	require.NoError(t, err)
	assert.Equal(t, categories[0].Name, found.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.CreateIfAbsent(context.Background(), []*entity.Category{{Name: name, Icon: "Tag"}}))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %s not stored", name)

	return nil
}

func TestExpenseRepository_OwnershipAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")
	other := createTestUser(t, db, "other@example.com", "")
	food := createTestCategory(t, db, "Food")

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	older := &entity.Expense{UserID: owner.ID, CategoryID: food.ID, AmountCents: 1234, Description: "lunch", Date: day}
	newer := &entity.Expense{UserID: owner.ID, CategoryID: food.ID, AmountCents: 500, Description: "coffee", Date: day.AddDate(0, 0, 1)}
	sameDay := &entity.Expense{UserID: owner.ID, CategoryID: food.ID, AmountCents: 100, Description: "snack", Date: day.AddDate(0, 0, 1)}
	for _, e := range []*entity.Expense{older, newer, sameDay} {
		require.NoError(t, repo.Create(ctx, e))
	}

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Same date: the later id (created later) comes first.
	assert.Equal(t, sameDay.ID, list[0].ID)
	assert.Equal(t, newer.ID, list[1].ID)
	assert.Equal(t, older.ID, list[2].ID)
	require.NotNil(t, list[2].Category)
	assert.Equal(t, "Food", list[2].Category.Name)
	assert.Equal(t, "12.34", list[2].Amount().StringFixed(2))

	otherList, err := repo.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, otherList)

	_, err = repo.FindByIDAndUser(ctx, older.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrExpenseNotFound)

	err = repo.Update(ctx, &entity.Expense{ID: older.ID, UserID: other.ID, CategoryID: food.ID, AmountCents: 1, Description: "x", Date: day})
	assert.ErrorIs(t, err, repository.ErrExpenseNotFound)

	assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, older.ID, other.ID), repository.ErrExpenseNotFound)

	stored, err := repo.FindByIDAndUser(ctx, older.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), stored.AmountCents)

	require.NoError(t, repo.DeleteByIDAndUser(ctx, older.ID, owner.ID))
	count, err := repo.CountByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestExpenseRepository_Create_UnknownCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)

	owner := createTestUser(t, db, "owner@example.com", "")

	err := repo.Create(context.Background(), &entity.Expense{
		UserID:      owner.ID,
		CategoryID:  uuid.New(),
		AmountCents: 100,
		Description: "orphan",
		Date:        time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestExpenseRepository_SummarizeByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")
	other := createTestUser(t, db, "other@example.com", "")
	salary := createTestCategory(t, db, "Salary")

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Expense{UserID: owner.ID, CategoryID: salary.ID, AmountCents: 100000, Description: "pay", Date: now, IsIncome: true}))
	require.NoError(t, repo.Create(ctx, &entity.Expense{UserID: owner.ID, CategoryID: salary.ID, AmountCents: 1234, Description: "a", Date: now}))
	require.NoError(t, repo.Create(ctx, &entity.Expense{UserID: owner.ID, CategoryID: salary.ID, AmountCents: 66, Description: "b", Date: now}))
	require.NoError(t, repo.Create(ctx, &entity.Expense{UserID: other.ID, CategoryID: salary.ID, AmountCents: 999, Description: "c", Date: now}))

	summary, err := repo.SummarizeByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), summary.IncomeCents)
	assert.Equal(t, int64(1300), summary.ExpenseCents)
	assert.Equal(t, int64(98700), summary.BalanceCents())

	empty, err := repo.SummarizeByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty.IncomeCents)
	assert.Zero(t, empty.ExpenseCents)
}

func TestCareerProfileRepository_OnePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerProfileRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")

	_, err := repo.FindByUser(ctx, owner.ID)
	assert.ErrorIs(t, err, repository.ErrCareerProfileNotFound)

	profile := &entity.CareerProfile{UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, profile))

	err = repo.Create(ctx, &entity.CareerProfile{UserID: owner.ID})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	profile.Headline = "Backend engineer"
	profile.Skills = []string{"Go", "SQL"}
	profile.Experience = []entity.Experience{{Company: "Acme", Role: "Engineer", Duration: "2y"}}
	profile.Education = []entity.Education{{School: "State U", Degree: "BSc", Year: "2015"}}
	require.NoError(t, repo.Update(ctx, profile))

	stored, err := repo.FindByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", stored.Headline)
	assert.Equal(t, []string{"Go", "SQL"}, stored.Skills)
	assert.Equal(t, profile.Experience, stored.Experience)
	assert.Equal(t, profile.Education, stored.Education)
}

func TestJobApplicationRepository_Scoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")
	other := createTestUser(t, db, "other@example.com", "")

	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	first := &entity.JobApplication{UserID: owner.ID, Company: "Acme", Position: "Dev", Status: entity.ApplicationStatusApplied, AppliedDate: base}
	second := &entity.JobApplication{UserID: owner.ID, Company: "Globex", Position: "SRE", Status: entity.ApplicationStatusRejected, AppliedDate: base.AddDate(0, 0, 2)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	open, err := repo.CountOpenByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)

	first.Status = entity.ApplicationStatusInterviewing
	require.NoError(t, repo.Update(ctx, first))

	hijack := *first
	hijack.UserID = other.ID
	assert.ErrorIs(t, repo.Update(ctx, &hijack), repository.ErrApplicationNotFound)
	assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, first.ID, other.ID), repository.ErrApplicationNotFound)

	stored, err := repo.FindByIDAndUser(ctx, first.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusInterviewing, stored.Status)

	require.NoError(t, repo.DeleteByIDAndUser(ctx, first.ID, owner.ID))
	_, err = repo.FindByIDAndUser(ctx, first.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestSupplyItemRepository_QuantityZeroAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplyItemRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")

	empty := &entity.SupplyItem{UserID: owner.ID, Name: "Rice", Category: "Food", Quantity: 0, Status: entity.SupplyStatusToBuy}
	stocked := &entity.SupplyItem{UserID: owner.ID, Name: "Soap", Category: "General", Quantity: 3, Status: entity.SupplyStatusInStock}
	urgent := &entity.SupplyItem{UserID: owner.ID, Name: "Milk", Category: "Food", Quantity: 1, Status: entity.SupplyStatusToBuyUrgent}
	for _, item := range []*entity.SupplyItem{empty, stocked, urgent} {
		require.NoError(t, repo.Create(ctx, item))
	}

	stored, err := repo.FindByIDAndUser(ctx, empty.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity)

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Status descending: "To Buy (Urgent)" > "To Buy" > "In Stock".
	assert.Equal(t, []uuid.UUID{urgent.ID, empty.ID, stocked.ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})

	toBuy, err := repo.CountToBuyByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), toBuy)

	assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, empty.ID, uuid.New()), repository.ErrSupplyItemNotFound)
}

func TestSurveyRepository_DeleteRemovesResponses(t *testing.T) {
	db := newTestDB(t)
	surveys := NewSurveyRepository(db)
	responses := NewResponseRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com", "")
	other := createTestUser(t, db, "other@example.com", "")

	survey := &entity.Survey{
		OwnerID: owner.ID,
		Title:   "Lunch poll",
		Questions: []entity.Question{
			{ID: "q1", Type: entity.QuestionTypeMultipleChoice, Label: "Where?", Options: []string{"A", "B"}, Required: true},
		},
		IsActive: true,
	}
	require.NoError(t, surveys.Create(ctx, survey))

	first := &entity.Response{SurveyID: survey.ID, Answers: map[string]any{"q1": "A"}}
	second := &entity.Response{SurveyID: survey.ID}
	require.NoError(t, responses.Create(ctx, first))
	require.NoError(t, responses.Create(ctx, second))

	listed, err := responses.ListBySurvey(ctx, survey.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, "A", listed[0].Answers["q1"])
	assert.NotNil(t, listed[1].Answers)

	public, err := surveys.FindByID(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, survey.Questions, public.Questions)

	_, err = surveys.FindByIDAndOwner(ctx, survey.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrSurveyNotFound)

	assert.ErrorIs(t, surveys.DeleteByIDAndOwner(ctx, survey.ID, other.ID), repository.ErrSurveyNotFound)
	listed, err = responses.ListBySurvey(ctx, survey.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2, "a foreign delete must not touch responses")

	require.NoError(t, surveys.DeleteByIDAndOwner(ctx, survey.ID, owner.ID))

	listed, err = responses.ListBySurvey(ctx, survey.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = responses.Create(ctx, &entity.Response{SurveyID: survey.ID, Answers: map[string]any{}})
	assert.ErrorIs(t, err, repository.ErrSurveyNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Email: "rollback@example.com", PasswordHash: "x", IsActive: true}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, &entity.User{Email: "commit@example.com", PasswordHash: "x", IsActive: true})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByEmail(ctx, "commit@example.com")
	assert.NoError(t, err)
}
