package validator

import (
	"fmt"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"

	"github.com/Oudwins/zog"
)

var HoldingShape = zog.Shape{
	"Symbol":   zog.String().Required().Min(1),
	"Quantity": zog.Float64().GTE(0),
}

var AlertShape = zog.Shape{
	"Symbol": zog.String().Required().Min(1),
	"Target": zog.Float64().GT(0),
}

var (
	holdingSchema = zog.Struct(HoldingShape)
	alertSchema   = zog.Struct(AlertShape)
)

// ValidateHolding enforces the holding contract: non-empty symbol and a
// non-negative quantity.
func ValidateHolding(h *model.Holding) error {
	if issues := holdingSchema.Validate(h); issues != nil {
		return customerrors.InvalidInput(
			fmt.Sprintf("holding %q: %v", h.Symbol, zog.Issues.SanitizeMap(issues)))
	}
	return nil
}

// ValidateAlertSpec enforces the alert contract: non-empty symbol, a
// positive target and a known direction. Direction is a typed string,
// checked outside zog.
func ValidateAlertSpec(a *model.AlertSpec) error {
	if issues := alertSchema.Validate(a); issues != nil {
		return customerrors.InvalidInput(
			fmt.Sprintf("alert %q: %v", a.Symbol, zog.Issues.SanitizeMap(issues)))
	}
	if a.Direction != model.AlertAbove && a.Direction != model.AlertBelow {
		return customerrors.InvalidInput(
			fmt.Sprintf("alert %q: direction must be %q or %q", a.Symbol, model.AlertAbove, model.AlertBelow))
	}
	return nil
}
