package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"ayurvignana/internal/classifier"
	"ayurvignana/internal/db"
	"ayurvignana/internal/matcher"
	"ayurvignana/internal/models"
	"ayurvignana/internal/services"
	"ayurvignana/internal/testutil"
)

type fakeIdentifier struct {
	result *services.IdentifyResult
	err    error
	recent []models.Identification
}

func (f *fakeIdentifier) Identify(_ context.Context, _ *multipart.FileHeader) (*services.IdentifyResult, error) {
	return f.result, f.err
}

func (f *fakeIdentifier) Recent(_ context.Context, _ int) ([]models.Identification, error) {
	return f.recent, nil
}

type fakeMonitor struct{}

func (fakeMonitor) Status() (bool, string, time.Time) {
	return true, "healthy", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newTestApp(rec Recommender, ident Identifier) *fiber.App {
	app := fiber.New()
	health := NewHealthHandler(fakeMonitor{})
	app.Get("/api/health", health.Health)
	app.Get("/api/health/classifier", health.Classifier)
	app.Post("/api/recommend", NewRecommendHandler(rec).Recommend)
	predict := NewPredictHandler(ident)
	app.Post("/api/predict", predict.Predict)
	app.Get("/api/identifications", predict.Recent)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to decode %q: %v", body, err)
	}
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decode(t, resp)
	if body["status"] != "healthy" || body["message"] != "AyurVignana API is running" {
		t.Errorf("body = %v", body)
	}
}

func TestHealth_Classifier(t *testing.T) {
	app := newTestApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/classifier", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body := decode(t, resp)
	data, ok := body["data"].(map[string]any)
	if !ok || data["up"] != true || data["status"] != "healthy" {
		t.Errorf("body = %v", body)
	}
}

func TestRecommend(t *testing.T) {
	app := newTestApp(services.NewRecommendationService(matcher.Default()), nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCount  int
	}{
		{"single bucket", `{"symptoms":"I have a Headache"}`, http.StatusOK, 3},
		{"two buckets", `{"symptoms":"stress and skin rash"}`, http.StatusOK, 6},
		{"no match", `{"symptoms":"xyzzy"}`, http.StatusOK, 0},
		{"blank", `{"symptoms":"   "}`, http.StatusBadRequest, 0},
		{"missing", `{}`, http.StatusBadRequest, 0},
		{"invalid json", `{"symptoms":`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body := decode(t, resp)
			if tt.wantStatus != http.StatusOK {
				if _, ok := body["error"].(string); !ok {
					t.Errorf("body = %v, want error message", body)
				}
				return
			}

			recs, ok := body["recommendations"].([]any)
			if !ok {
				t.Fatalf("recommendations = %v, want a list", body["recommendations"])
			}
			if len(recs) != tt.wantCount {
				t.Errorf("got %d recommendations, want %d", len(recs), tt.wantCount)
			}
			for _, r := range recs {
				m := r.(map[string]any)
				for _, key := range []string{"name", "dosage", "description", "type"} {
					if _, ok := m[key]; !ok {
						t.Errorf("recommendation %v missing %q", m, key)
					}
				}
			}
		})
	}
}

func postImage(t *testing.T, app *fiber.App, field string) *http.Response {
	t.Helper()
	body, contentType := testutil.MultipartBody(t, field, "leaf.png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/api/predict", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestPredict(t *testing.T) {
	result := &services.IdentifyResult{
		Prediction: classifier.Prediction{Label: "Tulsi", ClassIndex: 1, Confidence: 91.2},
		Herb: &models.Herb{
			Name:               "Tulsi",
			ScientificName:     "Ocimum sanctum",
			Nature:             "Cooling",
			DoshaCompatibility: "Vata, Kapha",
			Description:        "Holy basil.",
		},
		Filename: "abc.png",
		ImageURL: "/api/uploads/abc.png",
	}
	notFound := &services.IdentifyResult{
		Prediction: classifier.Prediction{Label: "Unknown (Class 7)", ClassIndex: 7, Confidence: 40},
	}

	tests := []struct {
		name       string
		ident      *fakeIdentifier
		field      string
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "found",
			ident:      &fakeIdentifier{result: result},
			field:      "image",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if body["name"] != "Tulsi" || body["scientific"] != "Ocimum sanctum" || body["dosha"] != "Vata, Kapha" {
					t.Errorf("body = %v", body)
				}
				if body["confidence"] != 91.2 || body["image_url"] != "/api/uploads/abc.png" {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "missing field",
			ident:      &fakeIdentifier{result: result},
			field:      "photo",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid image",
			ident:      &fakeIdentifier{err: &services.ImageError{Message: "Image is empty"}},
			field:      "image",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				if body["error"] != "Image is empty" {
					t.Errorf("error = %v", body["error"])
				}
			},
		},
		{
			name:       "herb not found",
			ident:      &fakeIdentifier{result: notFound, err: db.ErrHerbNotFound},
			field:      "image",
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				if body["prediction"] != "Unknown (Class 7)" || body["confidence"] != float64(40) {
					t.Errorf("body = %v", body)
				}
			},
		},
		{
			name:       "classifier down",
			ident:      &fakeIdentifier{err: errors.Join(services.ErrClassifierUnavailable, errors.New("dial tcp"))},
			field:      "image",
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unexpected error",
			ident:      &fakeIdentifier{err: errors.New("disk full")},
			field:      "image",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postImage(t, newTestApp(nil, tt.ident), tt.field)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body := decode(t, resp)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	ident := &fakeIdentifier{recent: []models.Identification{{Label: "Neem", HerbFound: true}}}
	app := newTestApp(nil, ident)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/identifications", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body := decode(t, resp)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v", body["data"])
	}
	if data[0].(map[string]any)["label"] != "Neem" {
		t.Errorf("data[0] = %v", data[0])
	}
}
