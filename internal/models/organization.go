package models

import "time"

// Organization é o tenant: todo dado de domínio pertence a exatamente uma.
type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex:idx_organizations_slug;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nomes dos índices únicos, usados para distinguir conflitos no cadastro.
const (
	OrganizationSlugIndex = "idx_organizations_slug"
	UserEmailIndex        = "idx_users_email"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// OrganizationMember liga um usuário a uma organização. Um usuário tem no
// máximo uma membership.
type OrganizationMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganizationID uint         `gorm:"index;not null" json:"organization_id"`
	Organization   Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"organization"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Role string `gorm:"size:20;default:'member'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
