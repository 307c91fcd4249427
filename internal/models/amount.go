package models

import (
	"encoding/json"
	"fmt"
)

// Amount is a monthly donation value. Current records store a single number
// per month, but legacy records store an array of numbers that must be summed.
// Both shapes are accepted at the JSON boundary so the aggregators only ever
// see a normalized scalar via Value.
type Amount struct {
	parts []float64
}

// NewAmount builds a scalar amount.
func NewAmount(v float64) Amount {
	return Amount{parts: []float64{v}}
}

// NewAmountList builds a legacy list-shaped amount.
func NewAmountList(vs ...float64) Amount {
	parts := make([]float64, len(vs))
	copy(parts, vs)
	return Amount{parts: parts}
}

// Value returns the scalar value of the amount. List-shaped amounts are
// summed.
func (a Amount) Value() float64 {
	var total float64
	for _, p := range a.parts {
		total += p
	}
	return total
}

// UnmarshalJSON accepts either a number or an array of numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		a.parts = []float64{scalar}
		return nil
	}

	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		a.parts = list
		return nil
	}

	return fmt.Errorf("donation amount must be a number or an array of numbers, got %s", data)
}

// MarshalJSON writes scalar amounts as a bare number and preserves the list
// shape for legacy records.
func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a.parts) == 1 {
		return json.Marshal(a.parts[0])
	}
	if a.parts == nil {
		return json.Marshal(float64(0))
	}
	return json.Marshal(a.parts)
}
