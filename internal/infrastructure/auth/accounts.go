package auth

import (
	"fmt"

	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	apperrors "github.com/corycamp/support-ticket-backend/internal/shared/errors"
)

// dummyHash is compared against when the username is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3p4Jt1sWKqkzCDt0Uu0vBGa"

type account struct {
	passwordHash string
	role         authorization.UserRole
}

// Authenticator checks credentials against the accounts listed in the
// configuration and issues tokens for them.
type Authenticator struct {
	accounts map[string]account
	hasher   *BcryptPasswordHasher
	tokens   *JWTService
}

func NewAuthenticator(cfg config.AuthConfig, hasher *BcryptPasswordHasher, tokens *JWTService) (*Authenticator, error) {
	accounts := make(map[string]account, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		role := authorization.RoleUser
		if a.Role != "" {
			r, err := authorization.NewUserRole(a.Role)
			if err != nil {
				return nil, fmt.Errorf("account %q: %w", a.Username, err)
			}
			role = r
		}
		if _, dup := accounts[a.Username]; dup {
			return nil, fmt.Errorf("account %q configured twice", a.Username)
		}
		accounts[a.Username] = account{passwordHash: a.PasswordHash, role: role}
	}

	return &Authenticator{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
	}, nil
}

// Login verifies username and password and returns a signed access token.
func (a *Authenticator) Login(username, password string) (*Token, error) {
	acc, ok := a.accounts[username]
	if !ok {
		_ = a.hasher.Verify(password, dummyHash)
		return nil, apperrors.NewInvalidCredentialsError()
	}
	if err := a.hasher.Verify(password, acc.passwordHash); err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}
	return a.tokens.Issue(username, acc.role)
}

func (a *Authenticator) Verify(token string) (*Claims, error) {
	return a.tokens.Verify(token)
}
