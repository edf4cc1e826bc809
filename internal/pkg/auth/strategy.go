package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

type Strategy interface {
	// IssueToken signs a token for the user. A non-positive ttl falls back to Options.UserTTL.
	IssueToken(userID string, role model.Role, ttl time.Duration) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options controls token lifetimes for the two login paths.
type Options struct {
	UserTTL  time.Duration
	AdminTTL time.Duration
}

const (
	DefaultUserTTL  = 7 * 24 * time.Hour
	DefaultAdminTTL = 6 * time.Hour
)

func (o Options) withDefaults() Options {
	if o.UserTTL <= 0 {
		o.UserTTL = DefaultUserTTL
	}
	if o.AdminTTL <= 0 {
		o.AdminTTL = DefaultAdminTTL
	}
	return o
}
