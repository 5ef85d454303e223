package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists, try a different email address")
	ErrUserDoesNotExist   = errors.New("email does not exist")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrUserNotVerified    = errors.New("unauthorized - please verify your account")
	ErrVerificationFailed = errors.New("verification failed - codes do not match")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash, code string) (uuid.UUID, error)
	UpdateDetails(ctx context.Context, email, username, passwordHash string) error
	SetVerified(ctx context.Context, email string) error
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// CodeSender delivers verification codes.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// AuthService handles signup, login, verification and detail updates.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	mailer CodeSender
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, mailer CodeSender) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates an unverified user and emails the verification code.
// A mail delivery failure is logged but does not fail the signup.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (uuid.UUID, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	code, err := generateCode()
	if err != nil {
		logger.Log.Errorw("failed to generate verification code", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, email, username, string(hashedPassword), code)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return uuid.Nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	if svc.mailer != nil {
		if err := svc.mailer.SendCode(ctx, email, code); err != nil {
			logger.Log.Warnw("failed to send verification code", "email", email, "err", err)
		}
	}

	return userID, nil
}

// Login authenticates a verified user and returns the user and a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !user.Verified {
		logger.Log.Errorw("user not verified", "email", email)
		return nil, "", ErrUserNotVerified
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Verify checks the submitted code and marks the account verified on match.
func (svc *AuthService) Verify(ctx context.Context, email, code string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || user.Code == nil || *user.Code != code {
		logger.Log.Errorw("verification failed", "email", email)
		return ErrVerificationFailed
	}

	if err := svc.writer.SetVerified(ctx, email); err != nil {
		logger.Log.Errorw("failed to mark user verified", "err", err)
		return err
	}

	return nil
}

// UpdateDetails re-hashes the password and overwrites username and password.
func (svc *AuthService) UpdateDetails(ctx context.Context, email, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdateDetails(ctx, email, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update details", "err", err)
		return err
	}

	return nil
}

// generateCode returns a random six-digit verification code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
