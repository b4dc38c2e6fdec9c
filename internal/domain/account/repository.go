package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Sign-up --------

	// CreateOrganizationWithOwner grava organização, usuário e membership
	// "owner" na mesma transação.
	CreateOrganizationWithOwner(
		ctx context.Context,
		org *models.Organization,
		user *models.User,
	) (*models.OrganizationMember, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	// -------- Users / membership --------
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	GetMembership(ctx context.Context, userID uint) (*models.OrganizationMember, error)

	// -------- Organization --------
	GetOrganization(ctx context.Context, organizationID uint) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, org *models.Organization) error

	// -------- Refresh tokens --------
	CreateRefreshToken(ctx context.Context, rt *models.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshToken devolve gorm.ErrRecordNotFound se o token já estava
	// revogado.
	RevokeRefreshToken(ctx context.Context, id uint, at time.Time) error
}
