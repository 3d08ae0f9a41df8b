package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ridgecast/internal/advisory"
	"ridgecast/internal/location"
	"ridgecast/internal/types"

	"github.com/gin-gonic/gin"
)

type stubAdvisoryService struct {
	result   *advisory.Advisory
	err      error
	gotCode  string
	gotDate  string
	wasAsked bool
}

func (s *stubAdvisoryService) GetAdvisory(code, date string) (*advisory.Advisory, error) {
	s.wasAsked = true
	s.gotCode = code
	s.gotDate = date
	return s.result, s.err
}

func newTestApp(svc advisory.Service) *App {
	gin.SetMode(gin.TestMode)
	app := &App{
		router:          gin.New(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		advisoryService: svc,
	}
	app.router.GET("/advisory", app.handleGetAdvisory)
	app.router.GET("/locations", app.handleListLocations)
	app.router.GET("/ping", app.handlePing)
	return app
}

func get(app *App, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandleGetAdvisory_Success(t *testing.T) {
	loc, _ := location.Lookup("ys")
	stub := &stubAdvisoryService{
		result: &advisory.Advisory{
			Location: loc,
			Category: types.CategoryMountain,
			Date:     "2026-01-05",
			Color:    advisory.ColorGray,
			Risks:    []string{"dense fog risk"},
		},
	}
	app := newTestApp(stub)

	w := get(app, "/advisory?location=ys&date=2026-01-05")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["date_display"] != "01/05" {
		t.Errorf("date_display = %v, want 01/05", resp["date_display"])
	}
	if resp["color"] != "gray" {
		t.Errorf("color = %v, want gray", resp["color"])
	}
}

func TestHandleGetAdvisory_NormalizesSlashDate(t *testing.T) {
	stub := &stubAdvisoryService{result: &advisory.Advisory{Date: "2026-01-05"}}
	app := newTestApp(stub)

	w := get(app, "/advisory?location=ys&date=2026%2F01%2F05")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stub.gotDate != "2026-01-05" {
		t.Errorf("service received date %q, want 2026-01-05", stub.gotDate)
	}
}

func TestHandleGetAdvisory_MissingParams(t *testing.T) {
	stub := &stubAdvisoryService{}
	app := newTestApp(stub)

	w := get(app, "/advisory?location=ys")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if stub.wasAsked {
		t.Error("service should not be called when binding fails")
	}
}

func TestHandleGetAdvisory_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unknown location", advisory.ErrLocationNotFound, http.StatusNotFound, "location not found"},
		{"bad date", advisory.ErrInvalidDate, http.StatusBadRequest, "date conversion failed"},
		{"malformed upstream data", advisory.ErrMalformedForecast, http.StatusBadGateway, "malformed forecast data"},
		{"upstream down", advisory.ErrUpstreamUnavailable, http.StatusServiceUnavailable, "forecast unavailable, try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubAdvisoryService{err: tt.err})

			w := get(app, "/advisory?location=ys&date=2026-01-05")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if resp["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", resp["error"], tt.wantMsg)
			}
		})
	}
}

func TestHandleListLocations(t *testing.T) {
	app := newTestApp(&stubAdvisoryService{})

	w := get(app, "/locations")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(resp) != 10 {
		t.Errorf("listed %d locations, want 10", len(resp))
	}
	for _, entry := range resp {
		if entry["category"] != "mountain" && entry["category"] != "road" {
			t.Errorf("entry %v has invalid category %v", entry["code"], entry["category"])
		}
	}
}
