package auth

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the one expected failure mode of a sign-in:
// the submitted email or password is wrong. Anything else returned by
// Authenticate is unexpected and should be treated as fatal to the request.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserSource looks up the account a credential pair claims to be.
type UserSource interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticator verifies submitted credentials against stored users.
type Authenticator struct {
	users UserSource
}

func NewAuthenticator(users UserSource) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate returns the user when the credentials check out,
// ErrInvalidCredentials when they do not, and the underlying error for
// any other failure.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
