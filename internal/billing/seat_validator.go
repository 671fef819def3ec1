// internal/billing/seat_validator.go
package billing

import "fmt"

// Rejection messages surfaced to callers verbatim. The two "limit
// reached" families are distinct on purpose: the plan-level ceiling is a
// property of the plan, the seat-limit ceiling of the account's autoscale
// configuration.
const (
	CannotSubtractSeatsMessage      = "You can't subtract Password Manager seats."
	NoAdditionalSeatsOptionMessage  = "Plan does not allow additional Password Manager seats."
	SeatLimitReachedMessage         = "Password Manager seat limit has been reached."
	NoSecretsManagerAccessMessage   = "Organization has no access to Secrets Manager."
	SmSeatLimitReachedMessage       = "Secrets Manager seat limit has been reached."
	SmExceedsPasswordManagerMessage = "You cannot have more Secrets Manager seats than Password Manager seats."
	planSeatCeilingMessageFormat    = "You have reached the maximum number of %s seats (%d) for this plan."
	passwordManagerProductName      = "Password Manager"
	secretsManagerProductName       = "Secrets Manager"
)

// PlanSeatCeilingMessage renders the plan-level ceiling rejection for a
// product; the ceiling is BaseSeats + MaxAdditionalSeats.
func PlanSeatCeilingMessage(product string, plan PlanFeatures) string {
	ceiling := plan.BaseSeats
	if plan.MaxAdditionalSeats != nil {
		ceiling += *plan.MaxAdditionalSeats
	}
	return fmt.Sprintf(planSeatCeilingMessageFormat, product, ceiling)
}

// ValidatePasswordManagerSeats decides whether the Password Manager seat
// pool can absorb the update. Rules are evaluated first-match-wins; later
// rules never override earlier ones.
func ValidatePasswordManagerSeats(update PasswordManagerSubscriptionUpdate) ValidationResult[PasswordManagerSubscriptionUpdate] {
	switch {
	// Unlimited seat pool: nothing to enforce.
	case update.Seats == nil:
		return Valid(update)

	case update.AdditionalSeats < 0:
		return Invalid(update, CannotSubtractSeatsMessage)

	// The operation fits inside the currently subscribed seats.
	case update.SeatsRequiredToAdd() == 0:
		return Valid(update)

	case !update.Plan.HasAdditionalSeatsOption:
		return Invalid(update, NoAdditionalSeatsOptionMessage)

	case update.Plan.MaxAdditionalSeats != nil &&
		*update.UpdatedSeatTotal() > update.Plan.BaseSeats+*update.Plan.MaxAdditionalSeats:
		return Invalid(update, PlanSeatCeilingMessage(passwordManagerProductName, update.Plan))

	// Growth is needed but no autoscale ceiling is configured.
	case update.MaxAutoscaleSeats == nil:
		return Invalid(update, SeatLimitReachedMessage)

	case *update.UpdatedSeatTotal() > *update.MaxAutoscaleSeats:
		return Invalid(update, SeatLimitReachedMessage)

	default:
		return Valid(update)
	}
}

// ValidateSecretsManagerSeats decides whether the Secrets Manager seat
// pool can absorb the update. The rule order is load-bearing: a case that
// trips both the plan-level ceiling and the Password Manager comparison
// must report the plan-level message. Every rule past the no-op pair
// applies only while the product is enabled; a disabled product with a
// negative seat delta falls through to Valid.
func ValidateSecretsManagerSeats(update SecretsManagerSubscriptionUpdate) ValidationResult[SecretsManagerSubscriptionUpdate] {
	switch {
	case !update.UseSecretsManager && update.AdditionalSeats > 0:
		return Invalid(update, NoSecretsManagerAccessMessage)

	// No-op cases: the product is off and nothing is requested, or the
	// seat pool is unlimited.
	case !update.UseSecretsManager && update.AdditionalSeats == 0,
		update.UseSecretsManager && update.Seats == nil:
		return Valid(update)

	case update.UseSecretsManager && !update.Plan.HasAdditionalSeatsOption:
		return Invalid(update, PlanSeatCeilingMessage(secretsManagerProductName, update.Plan))

	case update.UseSecretsManager &&
		update.Plan.MaxAdditionalSeats != nil && update.AdditionalSeats > *update.Plan.MaxAdditionalSeats:
		return Invalid(update, PlanSeatCeilingMessage(secretsManagerProductName, update.Plan))

	case update.UseSecretsManager &&
		update.MaxAutoscaleSeats != nil && *update.UpdatedSeatTotal() > *update.MaxAutoscaleSeats:
		return Invalid(update, SmSeatLimitReachedMessage)

	case update.UseSecretsManager &&
		update.PasswordManagerUpdatedSeatTotal != nil &&
		*update.UpdatedSeatTotal() > *update.PasswordManagerUpdatedSeatTotal:
		return Invalid(update, SmExceedsPasswordManagerMessage)

	default:
		return Valid(update)
	}
}
