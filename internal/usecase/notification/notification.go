package notification

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

// Inbox reúne as operações da caixa de notificações do usuário da sessão.
type Inbox struct {
	repo      domain.Repository
	publisher realtime.Publisher
}

func NewInbox(repo domain.Repository, publisher realtime.Publisher) *Inbox {
	return &Inbox{repo: repo, publisher: publisher}
}

func (uc *Inbox) List(
	ctx context.Context,
	sess session.Session,
	unreadOnly bool,
) ([]models.Notification, error) {
	return uc.repo.ListNotifications(ctx, sess.OrganizationID, sess.UserID, unreadOnly)
}

func (uc *Inbox) MarkRead(ctx context.Context, sess session.Session, id uint) error {
	if err := uc.repo.MarkRead(ctx, sess.OrganizationID, sess.UserID, id); err != nil {
		return notFound(err)
	}
	uc.publish(ctx, sess, realtime.KindUpdate, id)
	return nil
}

func (uc *Inbox) MarkAllRead(ctx context.Context, sess session.Session) (int64, error) {
	n, err := uc.repo.MarkAllRead(ctx, sess.OrganizationID, sess.UserID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.publish(ctx, sess, realtime.KindUpdate, 0)
	}
	return n, nil
}

func (uc *Inbox) Delete(ctx context.Context, sess session.Session, id uint) error {
	if err := uc.repo.DeleteNotification(ctx, sess.OrganizationID, sess.UserID, id); err != nil {
		return notFound(err)
	}
	uc.publish(ctx, sess, realtime.KindDelete, id)
	return nil
}

// id 0 indica alteração em lote.
func (uc *Inbox) publish(ctx context.Context, sess session.Session, kind realtime.Kind, id uint) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, realtime.Event{
		Table:          realtime.TableNotifications,
		Kind:           kind,
		ID:             id,
		OrganizationID: sess.OrganizationID,
	}); err != nil {
		slog.WarnContext(ctx, "publish notification change failed", "error", err)
	}
}

func notFound(err error) error {
	if httperr.IsRecordNotFound(err) {
		return httperr.ErrNotFound("notification_not_found")
	}
	return err
}
