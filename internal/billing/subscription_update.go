// internal/billing/subscription_update.go
package billing

import "github.com/dangerclosesec/vaultd/internal/model"

// PasswordManagerSubscriptionUpdate projects an organization's Password
// Manager seat configuration against the seats a pending operation would
// add. It has no identity and is never persisted; validators consume a
// fresh value per call.
type PasswordManagerSubscriptionUpdate struct {
	// Seats is the subscribed seat count; nil means unlimited.
	Seats *int
	// MaxAutoscaleSeats is the account-level autoscale ceiling; nil means
	// the seat count cannot grow automatically.
	MaxAutoscaleSeats *int
	OccupiedSeats     int
	AdditionalSeats   int
	Plan              PlanFeatures
}

// NewPasswordManagerSubscriptionUpdate builds the projection from the
// organization's current configuration.
func NewPasswordManagerSubscriptionUpdate(org *model.Organization, occupiedSeats, additionalSeats int) PasswordManagerSubscriptionUpdate {
	return PasswordManagerSubscriptionUpdate{
		Seats:             org.Seats,
		MaxAutoscaleSeats: org.MaxAutoscaleSeats,
		OccupiedSeats:     occupiedSeats,
		AdditionalSeats:   additionalSeats,
		Plan:              PlanFor(org.PlanType).PasswordManager,
	}
}

// AvailableSeats is Seats - OccupiedSeats; nil when seats are unlimited.
func (u PasswordManagerSubscriptionUpdate) AvailableSeats() *int {
	if u.Seats == nil {
		return nil
	}
	available := *u.Seats - u.OccupiedSeats
	return &available
}

// SeatsRequiredToAdd is how many seats the subscription must grow by to
// absorb AdditionalSeats, clamped at zero; always zero when unlimited.
func (u PasswordManagerSubscriptionUpdate) SeatsRequiredToAdd() int {
	available := u.AvailableSeats()
	if available == nil {
		return 0
	}
	required := u.AdditionalSeats - *available
	if required < 0 {
		return 0
	}
	return required
}

// UpdatedSeatTotal is Seats + SeatsRequiredToAdd; nil when unlimited.
func (u PasswordManagerSubscriptionUpdate) UpdatedSeatTotal() *int {
	if u.Seats == nil {
		return nil
	}
	total := *u.Seats + u.SeatsRequiredToAdd()
	return &total
}

// SecretsManagerSubscriptionUpdate is the Secrets Manager counterpart of
// PasswordManagerSubscriptionUpdate. It additionally carries the Password
// Manager updated seat total, because an organization's Secrets Manager
// seats may never exceed its Password Manager seats.
type SecretsManagerSubscriptionUpdate struct {
	UseSecretsManager bool
	Seats             *int
	MaxAutoscaleSeats *int
	OccupiedSeats     int
	AdditionalSeats   int
	Plan              PlanFeatures
	// PasswordManagerUpdatedSeatTotal is nil when the Password Manager
	// pool is unlimited.
	PasswordManagerUpdatedSeatTotal *int
}

// NewSecretsManagerSubscriptionUpdate builds the projection from the
// organization's current configuration and the companion Password Manager
// projection for the same operation.
func NewSecretsManagerSubscriptionUpdate(org *model.Organization, pm PasswordManagerSubscriptionUpdate, occupiedSeats, additionalSeats int) SecretsManagerSubscriptionUpdate {
	return SecretsManagerSubscriptionUpdate{
		UseSecretsManager:               org.UseSecretsManager,
		Seats:                           org.SmSeats,
		MaxAutoscaleSeats:               org.SmMaxAutoscaleSeats,
		OccupiedSeats:                   occupiedSeats,
		AdditionalSeats:                 additionalSeats,
		Plan:                            PlanFor(org.PlanType).SecretsManager,
		PasswordManagerUpdatedSeatTotal: pm.UpdatedSeatTotal(),
	}
}

// AvailableSeats is Seats - OccupiedSeats; nil when seats are unlimited.
func (u SecretsManagerSubscriptionUpdate) AvailableSeats() *int {
	if u.Seats == nil {
		return nil
	}
	available := *u.Seats - u.OccupiedSeats
	return &available
}

// SeatsRequiredToAdd is how many seats the subscription must grow by to
// absorb AdditionalSeats, clamped at zero; always zero when unlimited.
func (u SecretsManagerSubscriptionUpdate) SeatsRequiredToAdd() int {
	available := u.AvailableSeats()
	if available == nil {
		return 0
	}
	required := u.AdditionalSeats - *available
	if required < 0 {
		return 0
	}
	return required
}

// UpdatedSeatTotal is Seats + SeatsRequiredToAdd; nil when unlimited.
func (u SecretsManagerSubscriptionUpdate) UpdatedSeatTotal() *int {
	if u.Seats == nil {
		return nil
	}
	total := *u.Seats + u.SeatsRequiredToAdd()
	return &total
}
