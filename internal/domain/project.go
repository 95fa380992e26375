package domain

import "time"

type Project struct {
	ID        string
	Key       string // short uppercase identifier, e.g. "CRM"
	Name      string
	Status    ProjectStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
