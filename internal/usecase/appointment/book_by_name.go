package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

// BookByNameInput vem do formulário de texto livre do calendário.
type BookByNameInput struct {
	ProfessionalName string
	ClientName       string
	ClientPhone      string

	Date   string
	Time   string
	Status string
	Notes  string
}

// BookAppointmentByName traduz nomes em IDs e delega para CreateAppointment.
//
// Profissional: nome exato; nenhum → professional_not_found, mais de um →
// ambiguous_professional. Cliente: nome exato; com homônimos vale o de menor
// ID; sem nenhum, o cliente é criado junto com o agendamento. Duas chamadas
// simultâneas com o mesmo cliente novo podem criar dois clientes.
type BookAppointmentByName struct {
	repo     domain.Repository
	create   *CreateAppointment
	notifier Notifier
}

func NewBookAppointmentByName(
	repo domain.Repository,
	create *CreateAppointment,
	notifier Notifier,
) *BookAppointmentByName {
	return &BookAppointmentByName{
		repo:     repo,
		create:   create,
		notifier: notifier,
	}
}

func (uc *BookAppointmentByName) Execute(
	ctx context.Context,
	sess session.Session,
	in BookByNameInput,
) (*models.Appointment, error) {

	resolved, err := uc.resolve(ctx, sess, in)
	if err != nil {
		notifyFailure(uc.notifier, sess, err)
		return nil, err
	}

	return uc.create.Execute(ctx, sess, resolved)
}

func (uc *BookAppointmentByName) resolve(
	ctx context.Context,
	sess session.Session,
	in BookByNameInput,
) (CreateAppointmentInput, error) {

	profName := strings.TrimSpace(in.ProfessionalName)
	clientName := strings.TrimSpace(in.ClientName)
	if profName == "" || clientName == "" {
		return CreateAppointmentInput{}, httperr.ErrBusiness("invalid_request")
	}

	professionals, err := uc.repo.FindProfessionalsByName(ctx, sess.OrganizationID, profName)
	if err != nil {
		return CreateAppointmentInput{}, err
	}
	switch len(professionals) {
	case 0:
		return CreateAppointmentInput{}, httperr.ErrNotFound("professional_not_found")
	case 1:
	default:
		return CreateAppointmentInput{}, httperr.ErrBusiness("ambiguous_professional")
	}

	out := CreateAppointmentInput{
		ProfessionalID: professionals[0].ID,
		Date:           in.Date,
		Time:           in.Time,
		Status:         in.Status,
		Notes:          in.Notes,
	}

	clients, err := uc.repo.FindClientsByName(ctx, sess.OrganizationID, clientName)
	if err != nil {
		return CreateAppointmentInput{}, err
	}
	if len(clients) > 0 {
		out.ClientID = clients[0].ID
	} else {
		out.NewClientName = clientName
		out.NewClientPhone = in.ClientPhone
	}

	return out, nil
}
