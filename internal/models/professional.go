package models

import "time"

type Professional struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `gorm:"index;not null" json:"organization_id"`

	Name      string `gorm:"size:100;not null;index" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	PhotoURL  string `gorm:"size:255" json:"photo_url"`

	Availability []AvailabilityWindow `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilityWindow é uma janela semanal recorrente. DayOfWeek segue
// time.Weekday (0 = domingo); horários em "HH:MM".
type AvailabilityWindow struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index;not null" json:"professional_id"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
