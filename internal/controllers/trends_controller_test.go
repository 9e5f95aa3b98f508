package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
)

func TestGetTrends_OK(t *testing.T) {
	rec := doJSON(newTestServer(), http.MethodGet, "/trends?state=Andhra+Pradesh&crime=Rape", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d (%s)", rec.Code, rec.Body.String())
	}

	var body models.TrendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.State != "Andhra Pradesh" || body.Crime != "Rape" {
		t.Errorf("request keys not echoed: %+v", body)
	}
	if len(body.Data) != 3 {
		t.Fatalf("expected 3 points, got: %d", len(body.Data))
	}
	for i := 1; i < len(body.Data); i++ {
		if body.Data[i-1].Year >= body.Data[i].Year {
			t.Errorf("series not strictly ascending at index %d", i)
		}
	}
}

func TestGetTrends_Smoothed(t *testing.T) {
	rec := doJSON(newTestServer(), http.MethodGet, "/trends?state=Andhra+Pradesh&crime=DV&smooth=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got: %d (%s)", rec.Code, rec.Body.String())
	}

	var body models.TrendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Data[0].MovingAvg != nil || body.Data[1].MovingAvg != nil {
		t.Error("first two points must not carry a moving average")
	}
	if body.Data[2].MovingAvg == nil {
		t.Error("third point should carry a moving average")
	}
}

func TestGetTrends_InvalidCrimeCode(t *testing.T) {
	rec := doJSON(newTestServer(), http.MethodGet, "/trends?state=Delhi&crime=Burglary", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got: %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["detail"] == "" {
		t.Errorf("expected a detail message, got: %v", body)
	}
}

func TestGetTrends_UnknownState(t *testing.T) {
	rec := doJSON(newTestServer(), http.MethodGet, "/trends?state=Atlantis&crime=Rape", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got: %d", rec.Code)
	}
}

func TestGetTrends_MissingParams(t *testing.T) {
	rec := doJSON(newTestServer(), http.MethodGet, "/trends?state=Delhi", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got: %d", rec.Code)
	}
}
