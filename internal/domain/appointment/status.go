package appointment

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

// Status é um domínio aberto: os valores abaixo são os conhecidos pela
// interface, mas qualquer texto curto é aceito.
type Status string

const (
	StatusPending   Status = "Pendente"
	StatusConfirmed Status = "Confirmado"
	StatusCancelled Status = "Cancelado"
	StatusCompleted Status = "Concluído"
)

const maxStatusLen = 20

var knownStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// InitialStatus é usado quando o agendamento é criado sem status.
func InitialStatus() Status {
	return StatusPending
}

// NormalizeStatus apara o texto, aplica o status inicial quando vazio e
// devolve a grafia canônica dos status conhecidos.
func NormalizeStatus(raw string) (Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return InitialStatus(), nil
	}
	if utf8.RuneCountInString(s) > maxStatusLen {
		return "", httperr.ErrBusiness("invalid_status")
	}
	for _, known := range knownStatuses {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return Status(s), nil
}

// Blocks informa se o status ocupa a agenda do profissional.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}
