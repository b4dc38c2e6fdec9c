package realtime

import (
	"context"
	"time"
)

type Kind string

const (
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

const (
	TableAppointments  = "appointments"
	TableNotifications = "notifications"
)

// Event descreve uma mudança: qual tabela, que tipo e qual linha. O consumidor
// decide se aplica o patch local ou refaz a consulta.
type Event struct {
	Table          string    `json:"table"`
	Kind           Kind      `json:"kind"`
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organization_id"`
	At             time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}
