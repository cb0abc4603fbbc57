package api

import (
	"context"

	"github.com/mhutchens/fleetdash/internal/model"
)

// Login exchanges credentials for an access token. The form encoding matches
// the backend's token endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	var out model.TokenResponse
	_, err := c.rest.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&out).
		Post("/auth/access-token")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh trades a refresh token for a fresh access token. Nothing calls this
// automatically; session renewal stays in the caller's hands.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	var out model.TokenResponse
	_, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&out).
		Post("/auth/refresh")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var out model.User
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/users/me")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/users")
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Riders(ctx context.Context) ([]model.Rider, error) {
	var out []model.Rider
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/riders")
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Owners(ctx context.Context) ([]model.Owner, error) {
	var out []model.Owner
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/owners")
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Metrics(ctx context.Context) (*model.MetricsSummary, error) {
	var out model.MetricsSummary
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/metrics/summary")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Activities(ctx context.Context) ([]model.Activity, error) {
	var out []model.Activity
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/activities")
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) (*model.HealthStatus, error) {
	var out model.HealthStatus
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/system/health")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
