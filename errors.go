package impact

import (
	"fmt"
	"math"
)

// DomainError is returned when a quantity is physically undefined, e.g. a
// non-positive mass or a non-finite velocity.
type DomainError struct {
	Quantity string
	Value    float64
	Rule     string // defaults to "must be positive"
}

func (e *DomainError) Error() string {
	rule := e.Rule
	if rule == "" {
		rule = "must be positive"
	}
	return fmt.Sprintf("domain error: %s %s, got %g", e.Quantity, rule, e.Value)
}

// RangeError is returned when a quantity falls outside its allowed interval.
type RangeError struct {
	Quantity string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: %s out of range [%g, %g], got %g", e.Quantity, e.Min, e.Max, e.Value)
}

// positive returns a DomainError unless v is finite and strictly positive.
func positive(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &DomainError{Quantity: quantity, Value: v}
	}
	return nil
}

// nonNegative returns a DomainError unless v is finite and >= 0.
func nonNegative(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &DomainError{Quantity: quantity, Value: v, Rule: "must be non-negative"}
	}
	return nil
}

// impactAngle returns a RangeError unless 0 < deg <= 90.
func impactAngle(deg float64) error {
	if math.IsNaN(deg) || deg <= 0 || deg > 90 {
		return &RangeError{Quantity: "impact angle (deg)", Value: deg, Min: 0, Max: 90}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
