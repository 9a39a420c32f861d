package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homeready/homeready/pkg/cache"
	"go.uber.org/zap"
)

const testProfileBody = `
categories:
  - id: income
    name: Income
    kind: income
    items:
      - id: salary
        label: Salary
        amount: 100000
        type: income
        frequency: annual
        active: true
        incomeEntry: net
  - id: fixed-debts
    name: Fixed Debts
    kind: fixedDebts
    items:
      - id: car-payment
        label: Car payment
        amount: 500
        type: expense
        frequency: monthly
        active: true
mortgage:
  referenceRate: 6.5
  downPaymentSources:
    id: down-payment-sources
    name: Down Payment Sources
    items:
      - id: savings
        label: Savings
        amount: 50000
        type: income
        frequency: one-time
        active: true
`

func newTestHandler(t *testing.T, resultCache cache.Cache) http.Handler {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewHandler(logger, resultCache, 0, "test")
}

func postProfile(t *testing.T, h http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)
	return recorder
}

func TestAffordabilityEndpoint(t *testing.T) {
	recorder := postProfile(t, newTestHandler(t, nil), "/api/affordability", testProfileBody)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", recorder.Code, recorder.Body.String())
	}

	var response affordabilityResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Calculation.MaxPurchasePrice <= 0 {
		t.Errorf("MaxPurchasePrice = %v, expected positive", response.Calculation.MaxPurchasePrice)
	}
	if response.Calculation.GrossMonthlyIncome < 8333 || response.Calculation.GrossMonthlyIncome > 8334 {
		t.Errorf("GrossMonthlyIncome = %v, expected about 8333.33", response.Calculation.GrossMonthlyIncome)
	}
}

func TestAffordabilityEndpointWithPriceQuery(t *testing.T) {
	recorder := postProfile(t, newTestHandler(t, nil), "/api/affordability?price=400000", testProfileBody)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", recorder.Code, recorder.Body.String())
	}

	var response affordabilityResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Calculation.Price != 400000 {
		t.Errorf("Price = %v, expected 400000", response.Calculation.Price)
	}
	if response.Calculation.DownPaymentStatus != "shortfall" {
		t.Errorf("DownPaymentStatus = %s, expected shortfall", response.Calculation.DownPaymentStatus)
	}
	if response.Calculation.ShortfallAmount != 30000 {
		t.Errorf("ShortfallAmount = %v, expected 30000", response.Calculation.ShortfallAmount)
	}
}

func TestAffordabilityEndpointRejectsBadRequests(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{"Wrong method", http.MethodGet, "/api/affordability", "", http.StatusMethodNotAllowed},
		{"Empty body", http.MethodPost, "/api/affordability", "", http.StatusBadRequest},
		{"Malformed YAML", http.MethodPost, "/api/affordability", "categories: [", http.StatusBadRequest},
		{"Invalid price query", http.MethodPost, "/api/affordability?price=abc", testProfileBody, http.StatusBadRequest},
		{"Negative price query", http.MethodPost, "/api/affordability?price=-5", testProfileBody, http.StatusBadRequest},
		{"Zero price query", http.MethodPost, "/api/affordability?price=0", testProfileBody, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			h.ServeHTTP(recorder, request)
			if recorder.Code != tt.expectedStatus {
				t.Errorf("status = %d, expected %d", recorder.Code, tt.expectedStatus)
			}
		})
	}
}

func TestAffordabilityEndpointFailsClosedWithoutRate(t *testing.T) {
	// No reference rate and no explicit rate options: the server must refuse
	// rather than default a rate.
	body := `
categories:
  - id: income
    name: Income
    kind: income
    items:
      - id: salary
        label: Salary
        amount: 100000
        type: income
        frequency: annual
        active: true
`
	recorder := postProfile(t, newTestHandler(t, nil), "/api/affordability", body)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, expected 422; body: %s", recorder.Code, recorder.Body.String())
	}
}

func TestAffordabilityEndpointCaching(t *testing.T) {
	memory := cache.NewMemory()
	h := newTestHandler(t, memory)

	first := postProfile(t, h, "/api/affordability", testProfileBody)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, expected 200", first.Code)
	}
	var firstResponse affordabilityResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResponse); err != nil {
		t.Fatalf("failed to decode first response: %v", err)
	}
	if firstResponse.Cached {
		t.Error("first response reported cached = true")
	}

	second := postProfile(t, h, "/api/affordability", testProfileBody)
	var secondResponse affordabilityResponse
	if err := json.Unmarshal(second.Body.Bytes(), &secondResponse); err != nil {
		t.Fatalf("failed to decode second response: %v", err)
	}
	if !secondResponse.Cached {
		t.Error("second identical request was not served from the cache")
	}
	if secondResponse.Calculation.MaxPurchasePrice != firstResponse.Calculation.MaxPurchasePrice {
		t.Errorf("cached MaxPurchasePrice = %v, expected %v",
			secondResponse.Calculation.MaxPurchasePrice, firstResponse.Calculation.MaxPurchasePrice)
	}
}

func TestCachedResponsesCarryOwnWarnings(t *testing.T) {
	memory := cache.NewMemory()
	h := newTestHandler(t, memory)

	first := postProfile(t, h, "/api/affordability", testProfileBody)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, expected 200", first.Code)
	}
	var firstResponse affordabilityResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResponse); err != nil {
		t.Fatalf("failed to decode first response: %v", err)
	}
	if len(firstResponse.Warnings) != 0 {
		t.Fatalf("clean profile produced warnings: %v", firstResponse.Warnings)
	}

	// An inactive item with an unknown frequency changes nothing in the
	// normalized inputs, so this hits the same cache entry, but the profile
	// itself deserves a warning.
	flagged := strings.Replace(testProfileBody, "        incomeEntry: net", `        incomeEntry: net
      - id: bonus
        label: Bonus
        amount: 100
        type: income
        frequency: weekly
        active: false`, 1)
	second := postProfile(t, h, "/api/affordability", flagged)
	if second.Code != http.StatusOK {
		t.Fatalf("second request status = %d, expected 200; body: %s", second.Code, second.Body.String())
	}
	var secondResponse affordabilityResponse
	if err := json.Unmarshal(second.Body.Bytes(), &secondResponse); err != nil {
		t.Fatalf("failed to decode second response: %v", err)
	}
	if !secondResponse.Cached {
		t.Error("identical normalized inputs were not served from the cache")
	}
	found := false
	for _, warning := range secondResponse.Warnings {
		if strings.Contains(warning, "unknown frequency 'weekly'") {
			found = true
		}
	}
	if !found {
		t.Errorf("cached response lost the requester's own warnings: %v", secondResponse.Warnings)
	}
}

func TestVersionEndpoint(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	recorder := httptest.NewRecorder()
	newTestHandler(t, nil).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", recorder.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["version"] != "test" {
		t.Errorf("version = %s, expected test", payload["version"])
	}
}

func TestUploadSizeLimit(t *testing.T) {
	logger := zap.NewNop()
	h := NewHandler(logger, nil, 64, "test")

	oversized := strings.Repeat("a", 200)
	recorder := postProfile(t, h, "/api/affordability", oversized)
	if recorder.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected 413", recorder.Code)
	}
}
