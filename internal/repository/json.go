package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mhutchens/fleetdash/internal/config"
	"github.com/mhutchens/fleetdash/internal/model"
)

var (
	errTableFileIsDir = errors.New("table file is dir")
)

type Data struct {
	Accounts   []Account        `json:"accounts"`
	Riders     []model.Rider    `json:"riders"`
	Owners     []model.Owner    `json:"owners"`
	Activities []model.Activity `json:"activities"`
}

type jsonRepo struct {
	memRepo

	path string
	log  *zap.Logger
}

type jsonParams struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Log    *zap.Logger
}

func NewJSON(p jsonParams) (Repository, error) {
	r := &jsonRepo{
		path: p.Config.MockAPI.DataPath,
		log:  p.Log,
	}
	r.data = &Data{}

	err := r.readfile()
	if err != nil {
		// only log; start from the seed data and overwrite when the
		// service is stopped
		r.log.Warn("failed reading json repo data file, seeding", zap.Error(err))
		r.data = Seed()
	}

	p.LC.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func (r *jsonRepo) stop(_ context.Context) error {
	return r.writefile()
}

func (r *jsonRepo) readfile() error {
	finfo, err := os.Stat(r.path)
	if err != nil {
		return err
	}

	if finfo.IsDir() {
		return errTableFileIsDir
	}

	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(&r.data)
}

func (r *jsonRepo) writefile() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return err
	}

	_, err = f.Write(b)
	return err
}
