package services

import (
	"context"

	"neoflix/internal/apperr"
	"neoflix/internal/auth"
	"neoflix/internal/database"
	"neoflix/internal/metrics"
	"neoflix/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ErrEmailExists        = "An account already exists with the email address"
	ErrInvalidCredentials = "Incorrect email or password"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	graph  database.Graph
	hasher *auth.PasswordHasher
	tokens *auth.TokenCodec
	logger *logrus.Logger
}

func NewAuthService(graph database.Graph, hasher *auth.PasswordHasher, tokens *auth.TokenCodec, logger *logrus.Logger) AuthService {
	return &authService{
		graph:  graph,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a User node and returns it with a signed token. A
// duplicate email surfaces as a validation error.
func (s *authService) Register(ctx context.Context, email, password, name string) (_ *models.User, err error) {
	defer func() { metrics.RecordAuth("register", err) }()

	encrypted, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := database.Write(ctx, s.graph, func(ctx context.Context, tx database.Tx) (*models.User, error) {
		rows, err := tx.Run(ctx, `
			CREATE (u:User {
				userId: $userId,
				email: $email,
				password: $encrypted,
				name: $name,
				createdAt: datetime()
			})
			RETURN u { .userId, .name, .email } AS u`,
			map[string]any{
				"userId":    uuid.NewString(),
				"email":     email,
				"encrypted": encrypted,
				"name":      name,
			})
		if err != nil {
			return nil, err
		}
		value, ok := first(rows, "u")
		if !ok {
			return nil, apperr.Internal("user was not returned after create", nil)
		}
		return toUser(value), nil
	})
	if err != nil {
		if database.IsConstraintViolation(err) {
			s.logger.WithField("email", email).Warn("Registration rejected: email already exists")
			return nil, apperr.Validation(ErrEmailExists)
		}
		return nil, apperr.Internal("failed to register user", err)
	}

	if err := s.withToken(user); err != nil {
		return nil, err
	}
	s.logger.WithField("userId", user.UserID).Info("User registered")
	return user, nil
}

// Authenticate looks the user up by email and checks the password. Unknown
// email and wrong password fail identically.
func (s *authService) Authenticate(ctx context.Context, email, password string) (_ *models.User, err error) {
	defer func() { metrics.RecordAuth("login", err) }()

	type stored struct {
		user *models.User
		hash string
	}

	found, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) (*stored, error) {
		rows, err := tx.Run(ctx, `
			MATCH (u:User {email: $email})
			RETURN u { .userId, .email, .name, .password } AS u`,
			map[string]any{"email": email})
		if err != nil {
			return nil, err
		}
		value, ok := first(rows, "u")
		if !ok {
			return nil, nil
		}
		return &stored{user: toUser(value), hash: stringOf(value["password"])}, nil
	})
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}
	if found == nil || !s.hasher.Verify(password, found.hash) {
		return nil, apperr.Auth(ErrInvalidCredentials)
	}

	if err := s.withToken(found.user); err != nil {
		return nil, err
	}
	return found.user, nil
}

func (s *authService) withToken(user *models.User) error {
	token, err := s.tokens.Sign(user.UserID, user.Claims())
	if err != nil {
		return apperr.Internal("failed to issue token", err)
	}
	user.Token = token
	return nil
}

// toUser copies only the public fields; the password never leaves the service.
func toUser(value map[string]any) *models.User {
	return &models.User{
		UserID: stringOf(value["userId"]),
		Email:  stringOf(value["email"]),
		Name:   stringOf(value["name"]),
	}
}
