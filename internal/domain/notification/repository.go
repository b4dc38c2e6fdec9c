package notification

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository é sempre escopado ao par (organização, usuário).
type Repository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, organizationID, userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, organizationID, userID, notificationID uint) error
	MarkAllRead(ctx context.Context, organizationID, userID uint) (int64, error)
	DeleteNotification(ctx context.Context, organizationID, userID, notificationID uint) error
}
