package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/event"
	"github.com/mhutchens/fleetdash/internal/tokenstore"
)

const expiredMessage = "Your session has expired. Please log in again."

// Client is the single outbound path to the fleet backend. Every request
// carries the stored bearer token when one exists; a 401 on a token-bearing
// request clears the store and broadcasts an unauthorized event before the
// error reaches the caller. The failing request is never retried.
type Client struct {
	rest *resty.Client
	log  *zap.Logger
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Config *config.Config
	Tokens tokenstore.Store
	Bus    *event.Bus
}

func New(p Params) *Client {
	rest := resty.New().
		SetBaseURL(p.Config.API.BaseURL).
		SetTimeout(15 * time.Second)

	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := p.Tokens.Get(); token != "" {
			r.SetAuthToken(token)
		}
		return nil
	})

	rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if !resp.IsError() {
			return nil
		}

		apiErr := &Error{
			Status: resp.StatusCode(),
			Detail: errorDetail(resp.Body()),
		}

		// A 401 on an anonymous request (no bearer attached, e.g. a bad
		// login) is a plain credential rejection, not a dead session.
		if resp.StatusCode() == http.StatusUnauthorized && resp.Request.Token != "" {
			if err := p.Tokens.Clear(); err != nil {
				p.Log.Warn("failed clearing rejected token", zap.Error(err))
			}

			msg := apiErr.Detail
			if msg == "" {
				msg = expiredMessage
			}
			p.Bus.Publish(event.Unauthorized{Message: msg})
		}

		return apiErr
	})

	return &Client{
		rest: rest,
		log:  p.Log,
	}
}

func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
