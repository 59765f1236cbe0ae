package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
	"github.com/9novikoff/TaskManagementSystem/internal/service/auth"
	"github.com/9novikoff/TaskManagementSystem/internal/store"
)

// UserService provides registration and credential-based authentication.
type UserService interface {
	// Register validates the input, enforces username and email uniqueness
	// (in that order), hashes the password, persists the new user and
	// returns its public projection.
	Register(ctx context.Context, in RegisterInput) Result[PublicUser]

	// Login validates the input, resolves the user by username or email,
	// verifies the password against the stored hash and returns a signed
	// token asserting the user's identity.
	Login(ctx context.Context, in LoginInput) Result[string]
}

// userService implements UserService.
type userService struct {
	users      store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		users:      users,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register.
func (s *userService) Register(ctx context.Context, in RegisterInput) Result[PublicUser] {
	if violations := ValidateRegisterInput(in); len(violations) > 0 {
		s.logger.Info("failed registration attempt: validation failed",
			"username", in.Username,
			"email", in.Email)
		return Fail[PublicUser](ValidationFailed(JoinViolations(violations)))
	}

	// The username check precedes the email check.
	if _, err := s.users.GetByUsername(ctx, in.Username); err == nil {
		s.logger.Info("failed registration attempt: username already exists",
			"username", in.Username,
			"email", in.Email)
		return Fail[PublicUser](Conflict("Username already exists"))
	} else if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check username uniqueness", "error", err)
		return Fail[PublicUser](Internal(err))
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		s.logger.Info("failed registration attempt: email already exists",
			"username", in.Username,
			"email", in.Email)
		return Fail[PublicUser](Conflict("User with that email already exists"))
	} else if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check email uniqueness", "error", err)
		return Fail[PublicUser](Internal(err))
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return Fail[PublicUser](Internal(err))
	}

	user := domain.NewUser(in.Username, in.Email, hashed)
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can still trip the unique constraints.
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return Fail[PublicUser](Conflict("Username already exists"))
		case errors.Is(err, store.ErrEmailExists):
			return Fail[PublicUser](Conflict("User with that email already exists"))
		}
		s.logger.Error("failed to save user", "error", err, "username", in.Username)
		return Fail[PublicUser](Internal(err))
	}

	s.logger.Info("successful registration",
		"user_id", user.ID,
		"username", in.Username,
		"email", in.Email)

	return Ok(projectUser(user))
}

// Login implements UserService.Login.
func (s *userService) Login(ctx context.Context, in LoginInput) Result[string] {
	if violations := ValidateLoginInput(in); len(violations) > 0 {
		s.logger.Info("failed login attempt: validation failed",
			"identifier", in.UsernameOrEmail)
		return Fail[string](ValidationFailed(JoinViolations(violations)))
	}

	user, err := s.users.GetByIdentifier(ctx, in.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Info("failed login attempt: no such user",
				"identifier", in.UsernameOrEmail)
			return Fail[string](Unauthenticated("No user with that username or email"))
		}
		s.logger.Error("failed to resolve login identifier",
			"error", err,
			"identifier", in.UsernameOrEmail)
		return Fail[string](Internal(err))
	}

	if err := s.hasher.Compare(user.HashedPassword, in.Password); err != nil {
		s.logger.Info("failed login attempt: invalid password",
			"identifier", in.UsernameOrEmail)
		return Fail[string](Unauthenticated("Invalid password"))
	}

	token, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err, "user_id", user.ID)
		return Fail[string](Internal(err))
	}

	s.logger.Info("successful login", "user_id", user.ID)

	return Ok(token)
}
