package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
	pkgAuth "github.com/polkiloo/atelier/internal/pkg/auth"
)

// AdminCredentials are the configured admin login pair.
type AdminCredentials struct {
	Email    string
	Password string
}

func (c AdminCredentials) configured() bool {
	return c.Email != "" && c.Password != ""
}

// RegisterInput carries the self-registration form.
type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	Role     model.Role
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	opts   pkgAuth.Options
	admin  AdminCredentials
	logger *zap.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	opts pkgAuth.Options,
	admin AdminCredentials,
	logger *zap.Logger,
) *AuthUseCase {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, opts: opts, admin: admin, logger: logger}
}

// Register creates an account identified by email and/or phone.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Email == "" && in.Phone == "" {
		return nil, fmt.Errorf("%w: Email or phone is required", domainErrors.ErrValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", domainErrors.ErrValidation)
	}
	switch in.Role {
	case "", model.RoleUser:
		in.Role = model.RoleUser
	case model.RoleAdmin:
		return nil, fmt.Errorf("%w: Admin accounts cannot be self-registered", domainErrors.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domainErrors.ErrValidation, in.Role)
	}
	// the configured admin email is reserved for the admin login path
	if in.Email != "" && in.Email == u.admin.Email {
		return nil, fmt.Errorf("%w: User already exists", domainErrors.ErrAlreadyExists)
	}

	for _, contact := range []string{in.Email, in.Phone} {
		if contact == "" {
			continue
		}
		if _, err := u.users.GetByContact(ctx, contact); err == nil {
			return nil, fmt.Errorf("%w: User already exists", domainErrors.ErrAlreadyExists)
		} else if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}

	if in.Username == "" {
		in.Username = defaultUsername(in.Email, in.Phone)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, model.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: User already exists", domainErrors.ErrAlreadyExists)
		}
		return nil, err
	}
	return usr, nil
}

// Login validates credentials and returns a user token.
func (u *AuthUseCase) Login(ctx context.Context, emailOrPhone, password string) (*model.User, string, error) {
	emailOrPhone = strings.TrimSpace(emailOrPhone)
	if emailOrPhone == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByContact(ctx, emailOrPhone)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role, u.opts.UserTTL)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// AdminLogin checks the configured admin credentials and returns a short-lived admin token.
// The admin account is created in the user store on first login.
func (u *AuthUseCase) AdminLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	if !u.admin.configured() {
		return nil, "", fmt.Errorf("%w: Admin credentials are not set", domainErrors.ErrMisconfigured)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(u.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.admin.Password)) == 1
	if !emailOK || !passOK {
		return nil, "", fmt.Errorf("%w: Invalid admin credentials", domainErrors.ErrUnauthorized)
	}

	admin, err := u.ensureAdmin(ctx)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(admin.ID, model.RoleAdmin, u.opts.AdminTTL)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ensureAdmin makes the configured admin email the only admin account.
// A stored admin with another email is demoted; an account already holding
// the admin email is promoted and its password reset to the configured one.
func (u *AuthUseCase) ensureAdmin(ctx context.Context) (*model.User, error) {
	current, err := u.users.GetAdmin(ctx)
	switch {
	case err == nil:
		if current.Email == u.admin.Email {
			return current, nil
		}
		if err := u.users.SetRole(ctx, current.ID, model.RoleUser, ""); err != nil {
			return nil, err
		}
		u.logger.Warn("admin role revoked from account not matching configured admin",
			zap.String("user_id", current.ID))
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	hash, err := u.hasher.Hash(u.admin.Password)
	if err != nil {
		return nil, err
	}

	owner, err := u.users.GetByContact(ctx, u.admin.Email)
	switch {
	case err == nil:
		if err := u.users.SetRole(ctx, owner.ID, model.RoleAdmin, hash); err != nil {
			return nil, err
		}
		owner.Role = model.RoleAdmin
		owner.PasswordHash = hash
		u.logger.Warn("admin role granted to existing account with configured admin email",
			zap.String("user_id", owner.ID))
		return owner, nil
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	created, err := u.users.Create(ctx, model.User{
		Username:     "admin",
		Email:        u.admin.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("admin account created", zap.String("user_id", created.ID))
	return created, nil
}

// Authenticate resolves a bearer token into the principal of a stored user.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, fmt.Errorf("%w: No token, authorization denied", domainErrors.ErrUnauthorized)
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: Token not valid", domainErrors.ErrUnauthorized)
	}
	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.Principal{}, fmt.Errorf("%w: User no longer exists", domainErrors.ErrUnauthorized)
		}
		return model.Principal{}, err
	}
	return model.PrincipalOf(usr), nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func defaultUsername(email, phone string) string {
	if email != "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			return email[:at]
		}
		return email
	}
	return phone
}
