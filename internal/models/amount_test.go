package models

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshalScalar(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`150`), &a); err != nil {
		t.Fatalf("unmarshal scalar: %v", err)
	}
	if a.Value() != 150 {
		t.Errorf("Value = %v, want 150", a.Value())
	}
}

func TestAmountUnmarshalList(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`[50, 50]`), &a); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if a.Value() != 100 {
		t.Errorf("Value = %v, want 100", a.Value())
	}
}

func TestAmountUnmarshalRejectsOtherShapes(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`"lots"`), &a); err == nil {
		t.Error("string amount should be rejected")
	}
}

func TestAmountMarshalPreservesShape(t *testing.T) {
	scalar, err := json.Marshal(NewAmount(75))
	if err != nil {
		t.Fatal(err)
	}
	if string(scalar) != "75" {
		t.Errorf("scalar marshals to %s, want 75", scalar)
	}

	list, err := json.Marshal(NewAmountList(25, 50))
	if err != nil {
		t.Fatal(err)
	}
	if string(list) != "[25,50]" {
		t.Errorf("list marshals to %s, want [25,50]", list)
	}

	var zero Amount
	raw, err := json.Marshal(zero)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "0" {
		t.Errorf("zero value marshals to %s, want 0", raw)
	}
}

func TestDonationMapRoundTrip(t *testing.T) {
	raw := []byte(`{"2025":{"January":100,"February":[25,25]}}`)
	var don DonationMap
	if err := json.Unmarshal(raw, &don); err != nil {
		t.Fatalf("unmarshal donation map: %v", err)
	}
	if don["2025"]["January"].Value() != 100 {
		t.Errorf("January = %v, want 100", don["2025"]["January"].Value())
	}
	if don["2025"]["February"].Value() != 50 {
		t.Errorf("February = %v, want 50", don["2025"]["February"].Value())
	}
}
