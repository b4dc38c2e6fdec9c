package notify

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
)

// Writer grava a notificação e avisa os assinantes da organização.
type Writer struct {
	repo      notification.Repository
	publisher realtime.Publisher
}

func NewWriter(repo notification.Repository, publisher realtime.Publisher) *Writer {
	return &Writer{repo: repo, publisher: publisher}
}

func (w *Writer) Write(ctx context.Context, ev Event) error {
	n := models.Notification{
		OrganizationID: ev.OrganizationID,
		UserID:         ev.UserID,
		Type:           ev.Type,
		Title:          truncate(ev.Title, 100),
		Message:        truncate(ev.Message, 500),
	}

	if err := w.repo.CreateNotification(ctx, &n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	if w.publisher != nil {
		return w.publisher.Publish(ctx, realtime.Event{
			Table:          realtime.TableNotifications,
			Kind:           realtime.KindInsert,
			ID:             n.ID,
			OrganizationID: n.OrganizationID,
		})
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
