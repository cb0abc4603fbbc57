package repository

import (
	"context"
	"sync"

	"github.com/mhutchens/fleetdash/internal/model"
)

type memRepo struct {
	mu   sync.Mutex
	data *Data
}

// NewMemory returns a Repository over the given data with no persistence.
func NewMemory(data *Data) Repository {
	if data == nil {
		data = &Data{}
	}
	return &memRepo{data: data}
}

func (r *memRepo) GetAccountByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.data.Accounts {
		if a.User.Email == email {
			account := a
			return &account, nil
		}
	}

	return nil, ErrNotFound
}

func (r *memRepo) GetAccountByID(_ context.Context, id string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.data.Accounts {
		if a.User.ID == id {
			account := a
			return &account, nil
		}
	}

	return nil, ErrNotFound
}

func (r *memRepo) GetUsers(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, len(r.data.Accounts))
	for i, a := range r.data.Accounts {
		users[i] = a.User
	}
	return users, nil
}

func (r *memRepo) GetRiders(_ context.Context) ([]model.Rider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Rider(nil), r.data.Riders...), nil
}

func (r *memRepo) GetOwners(_ context.Context) ([]model.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Owner(nil), r.data.Owners...), nil
}

func (r *memRepo) GetActivities(_ context.Context) ([]model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Activity(nil), r.data.Activities...), nil
}

func (r *memRepo) AddActivity(_ context.Context, activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.Activities = append(r.data.Activities, *activity)
	return nil
}
