package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type SignUpInput struct {
	OrganizationName string
	Name             string
	Email            string
	Password         string
	Phone            string
}

type SignUp struct {
	repo        account.Repository
	issuer      *Issuer
	emailDomain func(string) bool
}

func NewSignUp(repo account.Repository, issuer *Issuer) *SignUp {
	return &SignUp{
		repo:        repo,
		issuer:      issuer,
		emailDomain: validators.IsEmailDomainValid,
	}
}

// WithEmailCheck troca a verificação de domínio do e-mail (DNS por padrão).
func (uc *SignUp) WithEmailCheck(fn func(string) bool) *SignUp {
	uc.emailDomain = fn
	return uc
}

func (uc *SignUp) Execute(ctx context.Context, in SignUpInput) (*SessionView, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	orgName := strings.TrimSpace(in.OrganizationName)
	name := strings.TrimSpace(in.Name)
	if orgName == "" || name == "" || len(in.Password) < 6 {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	email := validators.NormalizeEmail(in.Email)
	if !uc.emailDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	slug := validators.Slugify(orgName)
	if slug == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	exists, err := uc.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict("slug_already_exists")
	}

	// --------------------------------------------------
	// 2️⃣ Organização + dono
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{Name: orgName, Slug: slug}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        validators.NormalizePhone(in.Phone),
	}

	member, err := uc.repo.CreateOrganizationWithOwner(ctx, org, user)
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			// Outro cadastro pode ter levado o slug depois de SlugExists.
			if httperr.UniqueConstraint(err) == models.OrganizationSlugIndex {
				return nil, httperr.ErrConflict("slug_already_exists")
			}
			return nil, httperr.ErrConflict("email_already_exists")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Tokens
	// --------------------------------------------------
	tokens, err := uc.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &SessionView{
		User:         newUserView(user),
		Organization: member.Organization,
		Role:         member.Role,
		Tokens:       tokens,
	}, nil
}
