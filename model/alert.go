package model

import "time"

type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// AlertSpec is a target-price rule supplied by the caller.
type AlertSpec struct {
	Symbol    string         `json:"symbol"`
	Target    float64        `json:"target"`
	Direction AlertDirection `json:"direction"`
}

// TriggeredAlert is an AlertSpec currently satisfied by the live price.
type TriggeredAlert struct {
	Symbol    string         `json:"symbol"`
	Name      string         `json:"name,omitempty"`
	Target    float64        `json:"target"`
	Direction AlertDirection `json:"direction"`
	Current   float64        `json:"current"`
}

// FailedCheck marks an alert whose price lookup failed. It is distinct
// from "not triggered": the condition could not be evaluated at all.
type FailedCheck struct {
	Symbol    string         `json:"symbol"`
	Target    float64        `json:"target"`
	Direction AlertDirection `json:"direction"`
	Error     string         `json:"error"`
}

// AlertReport is the result of one stateless evaluation pass.
// Both slices preserve the input order of the checked alerts.
type AlertReport struct {
	Triggered []TriggeredAlert `json:"triggered"`
	Failed    []FailedCheck    `json:"failed,omitempty"`
	CheckedAt time.Time        `json:"checkedAt"`
}
