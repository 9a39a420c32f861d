package output

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/homeready/homeready/internal/engine"
)

func TestNewCalculationResponseWithFiniteDTI(t *testing.T) {
	calc := &engine.Calculation{
		Price:            400000,
		MaxPurchasePrice: 365000,
		DTIRatio:         0.34,
		CanAfford:        false,
		Converged:        true,
	}

	response := NewCalculationResponse(calc)
	if response.DTIRatio == nil {
		t.Fatal("DTIRatio = nil, expected a finite ratio")
	}
	if math.Abs(*response.DTIRatio-0.34) > 0.0001 {
		t.Errorf("DTIRatio = %v, expected 0.34", *response.DTIRatio)
	}
}

func TestNewCalculationResponseWithInfiniteDTI(t *testing.T) {
	calc := &engine.Calculation{
		DTIRatio:  math.Inf(1),
		CanAfford: false,
		Converged: true,
	}

	response := NewCalculationResponse(calc)
	if response.DTIRatio != nil {
		t.Errorf("DTIRatio = %v, expected nil for the infinity sentinel", *response.DTIRatio)
	}

	// The sentinel must never break JSON encoding
	payload, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error = %v", err)
	}
	if decoded["dtiRatio"] != nil {
		t.Errorf("dtiRatio = %v, expected null", decoded["dtiRatio"])
	}
}
