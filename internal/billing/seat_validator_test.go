package billing_test

import (
	"testing"

	"github.com/dangerclosesec/vaultd/internal/billing"
	"github.com/dangerclosesec/vaultd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func teamsOrg(seats, maxAutoscale *int) *model.Organization {
	return &model.Organization{
		Name:              "Acme",
		PlanType:          model.PlanTeams,
		Seats:             seats,
		MaxAutoscaleSeats: maxAutoscale,
	}
}

func TestValidatePasswordManagerSeats(t *testing.T) {
	tests := []struct {
		name            string
		org             *model.Organization
		occupiedSeats   int
		additionalSeats int
		wantValid       bool
		wantError       string
	}{
		{
			name:            "unlimited seat pool is always valid",
			org:             teamsOrg(nil, nil),
			occupiedSeats:   500,
			additionalSeats: 500,
			wantValid:       true,
		},
		{
			name:            "negative additional seats are rejected",
			org:             teamsOrg(intPtr(10), intPtr(20)),
			occupiedSeats:   5,
			additionalSeats: -1,
			wantValid:       false,
			wantError:       billing.CannotSubtractSeatsMessage,
		},
		{
			name:            "operation that fits current seats is valid",
			org:             teamsOrg(intPtr(10), nil),
			occupiedSeats:   9,
			additionalSeats: 1,
			wantValid:       true,
		},
		{
			name: "plan without additional seats option rejects growth",
			org: &model.Organization{
				PlanType: model.PlanFree,
				Seats:    intPtr(2),
			},
			occupiedSeats:   2,
			additionalSeats: 1,
			wantValid:       false,
			wantError:       billing.NoAdditionalSeatsOptionMessage,
		},
		{
			name:            "growth without an autoscale ceiling is rejected",
			org:             teamsOrg(intPtr(10), nil),
			occupiedSeats:   10,
			additionalSeats: 1,
			wantValid:       false,
			wantError:       billing.SeatLimitReachedMessage,
		},
		{
			name:            "growth past the autoscale ceiling is rejected",
			org:             teamsOrg(intPtr(10), intPtr(11)),
			occupiedSeats:   10,
			additionalSeats: 2,
			wantValid:       false,
			wantError:       billing.SeatLimitReachedMessage,
		},
		{
			name:            "growth within the autoscale ceiling is valid",
			org:             teamsOrg(intPtr(10), intPtr(12)),
			occupiedSeats:   10,
			additionalSeats: 2,
			wantValid:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := billing.NewPasswordManagerSubscriptionUpdate(tt.org, tt.occupiedSeats, tt.additionalSeats)
			result := billing.ValidatePasswordManagerSeats(update)

			assert.Equal(t, tt.wantValid, result.IsValid())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, result.Error())
			}
		})
	}
}

func TestPasswordManagerSubscriptionUpdate(t *testing.T) {
	t.Run("seats required to add is clamped at zero", func(t *testing.T) {
		update := billing.NewPasswordManagerSubscriptionUpdate(teamsOrg(intPtr(10), nil), 4, 2)
		assert.Equal(t, 0, update.SeatsRequiredToAdd())

		require.NotNil(t, update.UpdatedSeatTotal())
		assert.Equal(t, 10, *update.UpdatedSeatTotal())
	})

	t.Run("seats required to add covers the shortfall exactly", func(t *testing.T) {
		update := billing.NewPasswordManagerSubscriptionUpdate(teamsOrg(intPtr(10), intPtr(20)), 9, 4)
		assert.Equal(t, 3, update.SeatsRequiredToAdd())

		require.NotNil(t, update.UpdatedSeatTotal())
		assert.Equal(t, 13, *update.UpdatedSeatTotal())
	})

	t.Run("unlimited pool never requires growth", func(t *testing.T) {
		update := billing.NewPasswordManagerSubscriptionUpdate(teamsOrg(nil, nil), 100, 100)
		assert.Nil(t, update.AvailableSeats())
		assert.Equal(t, 0, update.SeatsRequiredToAdd())
		assert.Nil(t, update.UpdatedSeatTotal())
	})
}

func secretsManagerOrg(useSM bool, smSeats, smMaxAutoscale, pmSeats *int) *model.Organization {
	return &model.Organization{
		Name:                "Acme",
		PlanType:            model.PlanTeams,
		Seats:               pmSeats,
		UseSecretsManager:   useSM,
		SmSeats:             smSeats,
		SmMaxAutoscaleSeats: smMaxAutoscale,
	}
}

func TestValidateSecretsManagerSeats(t *testing.T) {
	tests := []struct {
		name         string
		org          *model.Organization
		smOccupied   int
		smAdditional int
		pmOccupied   int
		pmAdditional int
		wantValid    bool
		wantError    string
	}{
		{
			name:         "no secrets manager access rejects growth",
			org:          secretsManagerOrg(false, intPtr(5), nil, intPtr(10)),
			smAdditional: 1,
			wantValid:    false,
			wantError:    billing.NoSecretsManagerAccessMessage,
		},
		{
			name:         "no secrets manager access with no growth is valid",
			org:          secretsManagerOrg(false, intPtr(5), nil, intPtr(10)),
			smAdditional: 0,
			wantValid:    true,
		},
		{
			name:         "no secrets manager access with a negative delta is valid",
			org:          secretsManagerOrg(false, intPtr(2), nil, intPtr(10)),
			smOccupied:   2,
			smAdditional: -1,
			wantValid:    true,
		},
		{
			name:         "disabled product with no seat pool never consults the ceilings",
			org:          secretsManagerOrg(false, nil, intPtr(5), intPtr(10)),
			smAdditional: -1,
			wantValid:    true,
		},
		{
			name:         "unlimited secrets manager pool is valid",
			org:          secretsManagerOrg(true, nil, nil, intPtr(10)),
			smOccupied:   50,
			smAdditional: 50,
			wantValid:    true,
		},
		{
			name: "plan without additional seats option reports the plan ceiling",
			org: func() *model.Organization {
				o := secretsManagerOrg(true, intPtr(2), nil, intPtr(2))
				o.PlanType = model.PlanFree
				return o
			}(),
			smOccupied:   2,
			smAdditional: 1,
			wantValid:    false,
			wantError:    "You have reached the maximum number of Secrets Manager seats (2) for this plan.",
		},
		{
			name:         "growth past the plan-level seat cap reports the plan ceiling",
			org:          secretsManagerOrg(true, intPtr(100), intPtr(300), intPtr(300)),
			smOccupied:   100,
			smAdditional: 101,
			wantValid:    false,
			wantError:    "You have reached the maximum number of Secrets Manager seats (100) for this plan.",
		},
		{
			name:         "growth past the autoscale ceiling is rejected",
			org:          secretsManagerOrg(true, intPtr(5), intPtr(6), intPtr(20)),
			smOccupied:   5,
			smAdditional: 2,
			wantValid:    false,
			wantError:    billing.SmSeatLimitReachedMessage,
		},
		{
			name:         "secrets manager seats may not exceed password manager seats",
			org:          secretsManagerOrg(true, intPtr(5), nil, intPtr(6)),
			smOccupied:   5,
			smAdditional: 2,
			wantValid:    false,
			wantError:    billing.SmExceedsPasswordManagerMessage,
		},
		{
			name:         "growth within every ceiling is valid",
			org:          secretsManagerOrg(true, intPtr(5), intPtr(10), intPtr(20)),
			smOccupied:   5,
			smAdditional: 2,
			wantValid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := billing.NewPasswordManagerSubscriptionUpdate(tt.org, tt.pmOccupied, tt.pmAdditional)
			update := billing.NewSecretsManagerSubscriptionUpdate(tt.org, pm, tt.smOccupied, tt.smAdditional)
			result := billing.ValidateSecretsManagerSeats(update)

			assert.Equal(t, tt.wantValid, result.IsValid())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, result.Error())
			}
		})
	}
}

// A single update can exceed both the plan-level seat cap and the
// Password Manager comparison; the plan-level message must win.
func TestValidateSecretsManagerSeatsRuleOrder(t *testing.T) {
	org := secretsManagerOrg(true, intPtr(100), intPtr(300), intPtr(50))
	pm := billing.NewPasswordManagerSubscriptionUpdate(org, 0, 0)
	update := billing.NewSecretsManagerSubscriptionUpdate(org, pm, 100, 150)

	result := billing.ValidateSecretsManagerSeats(update)

	assert.False(t, result.IsValid())
	assert.Equal(t, "You have reached the maximum number of Secrets Manager seats (100) for this plan.", result.Error())
}
