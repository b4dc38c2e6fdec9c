package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Sign-up
// --------------------------------------------------

func (r *AccountGormRepository) CreateOrganizationWithOwner(
	ctx context.Context,
	org *models.Organization,
	user *models.User,
) (*models.OrganizationMember, error) {

	var member models.OrganizationMember
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		member = models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           models.RoleOwner,
		}
		return tx.Omit("Organization", "User").Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	member.Organization = *org
	return &member, nil
}

func (r *AccountGormRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Organization{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Users / membership
// --------------------------------------------------

func (r *AccountGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetMembership(ctx context.Context, userID uint) (*models.OrganizationMember, error) {
	var m models.OrganizationMember
	if err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ?", userID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// --------------------------------------------------
// Organization
// --------------------------------------------------

func (r *AccountGormRepository) GetOrganization(ctx context.Context, organizationID uint) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).First(&org, organizationID).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *AccountGormRepository) UpdateOrganization(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// --------------------------------------------------
// Refresh tokens
// --------------------------------------------------

func (r *AccountGormRepository) CreateRefreshToken(ctx context.Context, rt *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *AccountGormRepository) GetRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken trava a linha; token já revogado devolve
// gorm.ErrRecordNotFound, então só uma rotação concorrente vence.
func (r *AccountGormRepository) RevokeRefreshToken(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rt models.RefreshToken
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&rt).Error; err != nil {
			return err
		}
		if rt.RevokedAt != nil {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&rt).Update("revoked_at", at).Error
	})
}

// Compile-time check
var _ account.Repository = (*AccountGormRepository)(nil)
