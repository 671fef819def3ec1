// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanTeams      PlanType = "teams"
	PlanEnterprise PlanType = "enterprise"
)

// Organization is the billing tenant. Seat fields are nullable: a nil
// seat count means the pool is unlimited, a nil autoscale cap means the
// seat count may not grow past Seats.
type Organization struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                string    `gorm:"type:text;not null" json:"name"`
	PlanType            PlanType  `gorm:"type:text;not null;default:'free'" json:"plan_type"`
	Seats               *int      `json:"seats"`
	MaxAutoscaleSeats   *int      `json:"max_autoscale_seats"`
	UseSecretsManager   bool      `gorm:"not null;default:false" json:"use_secrets_manager"`
	SmSeats             *int      `json:"sm_seats"`
	SmMaxAutoscaleSeats *int      `json:"sm_max_autoscale_seats"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Users []OrganizationUser `gorm:"foreignKey:OrganizationID" json:"-"`
}
