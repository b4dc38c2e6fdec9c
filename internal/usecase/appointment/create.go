package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// CreateAppointmentInput identifica profissional e cliente por ID. Sem
// ClientID, NewClientName cria o cliente junto com o agendamento.
type CreateAppointmentInput struct {
	ProfessionalID uint

	ClientID       uint
	NewClientName  string
	NewClientPhone string

	Date   string
	Time   string
	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	publisher realtime.Publisher
	notifier  Notifier
	loc       *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	publisher realtime.Publisher,
	notifier Notifier,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.create(ctx, sess, in)
	if err != nil {
		notifyFailure(uc.notifier, sess, err)
		return nil, err
	}

	publishChange(ctx, uc.publisher, realtime.KindInsert, ap)

	if uc.notifier != nil {
		uc.notifier.Dispatch(notify.Event{
			OrganizationID: sess.OrganizationID,
			UserID:         sess.UserID,
			Type:           models.NotificationSuccess,
			Title:          "Agendamento criado",
			Message: fmt.Sprintf("%s com %s em %s.",
				ap.Client.Name,
				ap.Professional.Name,
				ap.StartTime.In(uc.loc).Format("02/01/2006 15:04"),
			),
		})
	}

	return ap, nil
}

func (uc *CreateAppointment) create(
	ctx context.Context,
	sess session.Session,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora e status
	// --------------------------------------------------
	start, err := domain.ParseStart(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, err
	}

	status, err := domain.NormalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Profissional
	// --------------------------------------------------
	professional, err := uc.repo.GetProfessional(ctx, sess.OrganizationID, in.ProfessionalID)
	if err != nil {
		return nil, notFoundAs(err, "professional_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Cliente (existente ou novo)
	// --------------------------------------------------
	var client *models.Client
	var newClient *models.Client

	if in.ClientID != 0 {
		client, err = uc.repo.GetClient(ctx, sess.OrganizationID, in.ClientID)
		if err != nil {
			return nil, notFoundAs(err, "client_not_found")
		}
	} else {
		name := strings.TrimSpace(in.NewClientName)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_client")
		}
		newClient = &models.Client{
			OrganizationID: sess.OrganizationID,
			Name:           name,
			Phone:          validators.NormalizePhone(in.NewClientPhone),
		}
	}

	// --------------------------------------------------
	// 4️⃣ Criação (cliente novo + agendamento na mesma transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		OrganizationID: sess.OrganizationID,
		ProfessionalID: professional.ID,
		StartTime:      start,
		EndTime:        domain.EndFor(start),
		Status:         string(status),
		Notes:          strings.TrimSpace(in.Notes),
	}
	if client != nil {
		ap.ClientID = client.ID
	}

	if err := uc.repo.CreateAppointment(ctx, ap, newClient); err != nil {
		return nil, err
	}

	if newClient != nil {
		client = newClient
	}
	ap.Professional = *professional
	ap.Client = *client

	return ap, nil
}
