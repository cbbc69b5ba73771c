// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Signup orchestrates the registration of a new principal.
//
// There is no pre-insert existence check: the insert itself is the check.
// The store's unique constraint decides the winner between concurrent
// signups and the repository reports the loser as ErrDuplicateEmail.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.logger.Info("Starting signup", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.logger.Info("Signup rejected, email already registered", "email", input.Email)

			return nil, domainerrors.ErrEmailTaken.WrapMessage("signup failed")
		}
		srv.logger.Error("Failed to create user", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to create user")
	}

	accessToken, err := srv.tokenSvc.Issue(newUser.ID, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signup")
	}
	srv.logger.Debug("User signed up successfully", "userID", newUser.ID)

	return &usecase.SignupOutput{
		AccessToken: accessToken,
		User:        newUser,
	}, nil
}

// Signin verifies credentials and issues a bearer token.
//
// Unknown email and wrong password return the same client-facing error so
// the endpoint cannot be used to probe which emails are registered. The two
// cases are only distinguished in debug logs for operability.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	srv.logger.Debug("Starting signin", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("Signin failed, unknown email", "email", input.Email)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		// A malformed stored hash is storage corruption, not a bad credential.
		srv.logger.Error("Failed to verify password hash", "error", err, "userID", user.ID)

		return nil, errors.Wrap(err, "failed to verify password hash")
	}
	if !ok {
		srv.logger.Debug("Signin failed, password mismatch", "userID", user.ID)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}

	accessToken, err := srv.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signin")
	}
	srv.logger.Debug("User signed in successfully", "userID", user.ID)

	return &usecase.SigninOutput{AccessToken: accessToken}, nil
}

// GetMe resolves the account of an authenticated principal. A token whose
// subject no longer exists (deleted account) maps to not-found.
func (srv *authService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get account failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// EditMe applies a partial update to the authenticated principal's account.
// Only non-nil input fields change. An email switch that collides with
// another account reports the same client-facing error as a duplicate
// signup, again leaving the decision to the store's unique constraint.
func (srv *authService) EditMe(ctx context.Context, userID int64, input *usecase.EditUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("edit account failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.logger.Info("Account edit rejected, email already registered", "userID", userID)

			return nil, domainerrors.ErrEmailTaken.WrapMessage("edit account failed")
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("edit account failed")
		}
		srv.logger.Error("Failed to update user", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to update user")
	}
	srv.logger.Debug("Account updated", "userID", userID)

	return user, nil
}
