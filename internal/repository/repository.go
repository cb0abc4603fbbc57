package repository

import (
	"context"
	"errors"

	"github.com/mhutchens/fleetdash/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
)

// Account pairs an API-facing user record with its login secret. The secret
// never leaves the repository layer.
type Account struct {
	User     model.User `json:"user"`
	Password string     `json:"password"`
}

type Repository interface {
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id string) (*Account, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	GetRiders(ctx context.Context) ([]model.Rider, error)
	GetOwners(ctx context.Context) ([]model.Owner, error)
	GetActivities(ctx context.Context) ([]model.Activity, error)
	AddActivity(ctx context.Context, activity *model.Activity) error
}
