package postgres

import (
	"context"
	"strings"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "find user by id", "id = ?", id)
}

// FindByEmail matches case-insensitively because emails are stored lower-cased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by email", "email = ?", normalizeEmail(email))
}

// FindByPhone retrieves a single user by their phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by phone", "phone = ?", strings.TrimSpace(phone))
}

// FindActiveByLogin matches exactly one column, chosen by the identifier's shape:
// email when it contains '@', phone otherwise. A value stored in one column is
// never matched against the other.
func (repo *userRepository) FindActiveByLogin(ctx context.Context, identifier string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, repository.ErrUserNotFound
	}

	if entity.IsEmailIdentifier(identifier) {
		return repo.findOne(ctx, "find active user by email", "email = ? AND is_active = ?", normalizeEmail(identifier), true)
	}

	return repo.findOne(ctx, "find active user by phone", "phone = ? AND is_active = ?", identifier, true)
}

func (repo *userRepository) findOne(ctx context.Context, op string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to "+op)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies back the generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if mapped := mapUserConstraintError(err); mapped != nil {
			return mapped
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists the profile fields and the active flag.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":     userM.Email,
			"phone":     userM.Phone,
			"full_name": userM.FullName,
			"is_active": userM.IsActive,
		})

	if result.Error != nil {
		if mapped := mapUserConstraintError(result.Error); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func mapUserConstraintError(err error) error {
	switch {
	case uniqueViolationOn(err, "idx_users_phone", "users.phone"):
		return repository.ErrDuplicatePhone
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateEmail
	default:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        derefString(data.Email),
		Phone:        derefString(data.Phone),
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel. Empty identifiers become NULL.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        nullableString(normalizeEmail(data.Email)),
		Phone:        nullableString(strings.TrimSpace(data.Phone)),
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
