package appointment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

type Notifier interface {
	Dispatch(ev notify.Event)
}

// publishChange não falha a operação: o evento só acelera a convergência
// dos clientes.
func publishChange(
	ctx context.Context,
	pub realtime.Publisher,
	kind realtime.Kind,
	ap *models.Appointment,
) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, realtime.Event{
		Table:          realtime.TableAppointments,
		Kind:           kind,
		ID:             ap.ID,
		OrganizationID: ap.OrganizationID,
	}); err != nil {
		slog.WarnContext(ctx, "publish appointment change failed",
			"appointment_id", ap.ID,
			"kind", kind,
			"error", err,
		)
	}
}

func notifyFailure(n Notifier, sess session.Session, err error) {
	if n == nil {
		return
	}

	msg := httperr.Message("")
	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg = httperr.Message(be.Code)
	}

	n.Dispatch(notify.Event{
		OrganizationID: sess.OrganizationID,
		UserID:         sess.UserID,
		Type:           models.NotificationError,
		Title:          "Erro ao criar agendamento",
		Message:        msg,
	})
}

// notFoundAs troca gorm.ErrRecordNotFound pelo erro de negócio informado.
func notFoundAs(err error, code string) error {
	if httperr.IsRecordNotFound(err) {
		return httperr.ErrNotFound(code)
	}
	return err
}
