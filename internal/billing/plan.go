// internal/billing/plan.go
package billing

import "github.com/dangerclosesec/vaultd/internal/model"

// PlanFeatures describes one product's seat terms within a plan.
type PlanFeatures struct {
	BaseSeats                int
	HasAdditionalSeatsOption bool
	// MaxAdditionalSeats caps seats purchasable beyond BaseSeats; nil
	// means the plan itself imposes no ceiling.
	MaxAdditionalSeats *int
	AllowSeatAutoscale bool
}

// Plan is the static feature/seat-price descriptor for a plan type. Plans
// are not persisted; organizations reference them by PlanType.
type Plan struct {
	Type            model.PlanType
	Name            string
	PasswordManager PlanFeatures
	SecretsManager  PlanFeatures
}

func intPtr(i int) *int { return &i }

var plans = map[model.PlanType]Plan{
	model.PlanFree: {
		Type: model.PlanFree,
		Name: "Free",
		PasswordManager: PlanFeatures{
			BaseSeats:                2,
			HasAdditionalSeatsOption: false,
		},
		SecretsManager: PlanFeatures{
			BaseSeats:                2,
			HasAdditionalSeatsOption: false,
		},
	},
	model.PlanTeams: {
		Type: model.PlanTeams,
		Name: "Teams",
		PasswordManager: PlanFeatures{
			BaseSeats:                0,
			HasAdditionalSeatsOption: true,
			AllowSeatAutoscale:       true,
		},
		SecretsManager: PlanFeatures{
			BaseSeats:                0,
			HasAdditionalSeatsOption: true,
			MaxAdditionalSeats:       intPtr(100),
			AllowSeatAutoscale:       true,
		},
	},
	model.PlanEnterprise: {
		Type: model.PlanEnterprise,
		Name: "Enterprise",
		PasswordManager: PlanFeatures{
			BaseSeats:                0,
			HasAdditionalSeatsOption: true,
			AllowSeatAutoscale:       true,
		},
		SecretsManager: PlanFeatures{
			BaseSeats:                0,
			HasAdditionalSeatsOption: true,
			AllowSeatAutoscale:       true,
		},
	},
}

// PlanFor resolves the static plan descriptor for a plan type. Unknown
// types resolve to the free plan, the most restrictive terms.
func PlanFor(t model.PlanType) Plan {
	if p, ok := plans[t]; ok {
		return p
	}
	return plans[model.PlanFree]
}
