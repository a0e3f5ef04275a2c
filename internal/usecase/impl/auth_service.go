package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the identifiers and password, hashes outside the transaction
// and stores the new user.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return nil, validationError("email", "email or phone is required")
	}
	if err := checkIdentifiers(email, phone); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("phone", phone))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		Phone:        phone,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register user", slog.String("email", email), slog.Any("error", err))

		return nil, mapUserWriteError(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login answers every failure with the same ErrInvalidCredentials so callers
// cannot tell an unknown identifier from a wrong password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	var loggedInUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		loggedInUser, findErr = repoFactory.UserRepo().FindActiveByLogin(ctx, username)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, expiresAt, err := srv.tokenService.Issue(loggedInUser.LoginIdentity())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        loggedInUser,
	}, nil
}

// Me returns the caller's own user record.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByID(ctx, userID)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load current user")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// UpdateMe applies the provided fields. Email and phone may be cleared, but not both.
func (srv *authService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		if input.FullName != nil {
			user.FullName = strings.TrimSpace(*input.FullName)
		}
		if input.Email != nil {
			user.Email = normalizeEmail(*input.Email)
		}
		if input.Phone != nil {
			user.Phone = strings.TrimSpace(*input.Phone)
		}

		if user.Email == "" && user.Phone == "" {
			return validationError("email", "email or phone is required")
		}
		if err := checkIdentifiers(user.Email, user.Phone); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		// Re-read for the refreshed updated_at.
		updated, err = userRepo.FindByID(ctx, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update current user", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to update current user")
		}

		return nil, mapUserWriteError(err, "failed to update current user")
	}

	return updated, nil
}

// mapUserWriteError turns duplicate identifiers into the public conflict errors.
// checkIdentifiers keeps the email and phone columns disjoint, so a login
// identifier resolves through exactly one of them.
func checkIdentifiers(email, phone string) error {
	if email != "" && !entity.IsEmailIdentifier(email) {
		return validationError("email", "email must be a valid email address")
	}
	if phone != "" && !entity.IsValidPhone(phone) {
		return validationError("phone", "phone must be digits with an optional leading +")
	}

	return nil
}

func mapUserWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, message)
	case errors.Is(err, repository.ErrDuplicatePhone):
		return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, message)
	default:
		return errors.Wrap(err, message)
	}
}
