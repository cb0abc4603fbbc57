package model

import "time"

type Rider struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Status   string    `json:"status"`
	Trips    int       `json:"trips"`
	JoinedAt time.Time `json:"joined_at"`
}

type Owner struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Vehicles int       `json:"vehicles"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

type Activity struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

type MetricsSummary struct {
	TotalUsers      int `json:"total_users"`
	ActiveRiders    int `json:"active_riders"`
	ActiveOwners    int `json:"active_owners"`
	ActivitiesToday int `json:"activities_today"`
}

type HealthStatus struct {
	Status     string            `json:"status"`
	UptimeSecs int64             `json:"uptime_secs"`
	Components map[string]string `json:"components"`
	CheckedAt  time.Time         `json:"checked_at"`
}
