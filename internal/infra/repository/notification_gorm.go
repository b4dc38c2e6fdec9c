package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	organizationID uint,
	userID uint,
	unreadOnly bool,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", organizationID, userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var ns []models.Notification
	if err := q.Order("created_at DESC").Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	organizationID uint,
	userID uint,
	notificationID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND organization_id = ? AND user_id = ?", notificationID, organizationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	organizationID uint,
	userID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("organization_id = ? AND user_id = ? AND is_read = ?", organizationID, userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) DeleteNotification(
	ctx context.Context,
	organizationID uint,
	userID uint,
	notificationID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND user_id = ?", notificationID, organizationID, userID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ notification.Repository = (*NotificationGormRepository)(nil)
