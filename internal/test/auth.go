package test

import (
	"errors"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
	pkgAuth "github.com/polkiloo/atelier/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return pkgAuth.ErrPasswordMismatch
	}
	return nil
}

// IssuedToken records one IssueToken call.
type IssuedToken struct {
	UserID string
	Role   model.Role
	TTL    time.Duration
}

// StrategyStub issues "token:<id>" and parses it back.
type StrategyStub struct {
	IssueErr error
	ParseFn  func(string) (*pkgAuth.Claims, error)
	Issued   []IssuedToken
}

// IssueToken returns deterministic tokens for tests.
func (s *StrategyStub) IssueToken(userID string, role model.Role, ttl time.Duration) (string, error) {
	s.Issued = append(s.Issued, IssuedToken{UserID: userID, Role: role, TTL: ttl})
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return "token:" + userID, nil
}

// ParseToken parses previously issued token strings.
func (s *StrategyStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, pkgAuth.ErrInvalidToken
	}
	return &pkgAuth.Claims{UserID: token[len(prefix):], Role: model.RoleUser}, nil
}

// Name returns the strategy identifier used in tests.
func (s *StrategyStub) Name() string {
	return "stub"
}

// ErrStub is a generic failure used to exercise error branches.
var ErrStub = errors.New("stub failure")
