package repository

import (
	"time"

	"github.com/mhutchens/fleetdash/internal/model"
)

// Seed is the data set a fresh installation starts from. The admin account
// matches the documented development credentials.
func Seed() *Data {
	created := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	return &Data{
		Accounts: []Account{
			{
				User: model.User{
					ID:        "admin-1",
					Email:     "admin@example.com",
					FullName:  "Fleet Admin",
					IsActive:  true,
					IsAdmin:   true,
					CreatedAt: created,
					UpdatedAt: created,
				},
				Password: "password",
			},
			{
				User: model.User{
					ID:        "ops-1",
					Email:     "ops@example.com",
					FullName:  "Fleet Operator",
					IsActive:  true,
					IsAdmin:   false,
					CreatedAt: created,
					UpdatedAt: created,
				},
				Password: "operator",
			},
		},
		Riders: []model.Rider{
			{ID: "rider-1", FullName: "Dana Whitfield", Email: "dana@example.com", Phone: "555-0141", Status: "active", Trips: 182, JoinedAt: created},
			{ID: "rider-2", FullName: "Marcus Oyelaran", Email: "marcus@example.com", Phone: "555-0176", Status: "active", Trips: 64, JoinedAt: created},
			{ID: "rider-3", FullName: "Priya Raman", Email: "priya@example.com", Phone: "555-0112", Status: "suspended", Trips: 12, JoinedAt: created},
		},
		Owners: []model.Owner{
			{ID: "owner-1", FullName: "Helena Sousa", Email: "helena@example.com", Vehicles: 4, Status: "active", JoinedAt: created},
			{ID: "owner-2", FullName: "Tomasz Kowal", Email: "tomasz@example.com", Vehicles: 1, Status: "pending", JoinedAt: created},
		},
		Activities: []model.Activity{
			{ID: "act-1", Actor: "admin@example.com", Action: "suspended rider", Target: "rider-3", CreatedAt: created.Add(2 * time.Hour)},
			{ID: "act-2", Actor: "ops@example.com", Action: "approved owner", Target: "owner-1", CreatedAt: created.Add(3 * time.Hour)},
		},
	}
}
