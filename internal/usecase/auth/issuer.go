package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Tokens é o par entregue ao cliente. RefreshToken vai também no cookie.
type Tokens struct {
	AccessToken      string    `json:"access_token"`
	TokenType        string    `json:"token_type"`
	ExpiresIn        int       `json:"expires_in"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// SessionView é o que o front recebe ao logar e em GET /session.
type SessionView struct {
	User         UserView            `json:"user"`
	Organization models.Organization `json:"organization"`
	Role         string              `json:"role"`
	Tokens       *Tokens             `json:"tokens,omitempty"`
}

type UserView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func newUserView(u *models.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

type Issuer struct {
	repo       account.Repository
	signer     *authtoken.Signer
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(
	repo account.Repository,
	signer *authtoken.Signer,
	refreshTTL time.Duration,
) *Issuer {
	return &Issuer{
		repo:       repo,
		signer:     signer,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue abre uma família nova de refresh tokens.
func (i *Issuer) Issue(ctx context.Context, userID uint) (*Tokens, error) {
	return i.issue(ctx, userID, uuid.NewString())
}

func (i *Issuer) issue(ctx context.Context, userID uint, familyID string) (*Tokens, error) {
	access, err := i.signer.Sign(userID)
	if err != nil {
		return nil, err
	}

	raw, hash, err := authtoken.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	rt := &models.RefreshToken{
		UserID:    userID,
		FamilyID:  familyID,
		Hash:      hash,
		ExpiresAt: i.now().Add(i.refreshTTL),
	}
	if err := i.repo.CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:      access,
		TokenType:        "Bearer",
		ExpiresIn:        int(i.signer.TTL().Seconds()),
		RefreshToken:     raw,
		RefreshExpiresAt: rt.ExpiresAt,
	}, nil
}
