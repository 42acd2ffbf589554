package models

import "testing"

func TestAccuracyBadge(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{"perfect", 100, AccuracyHigh},
		{"high boundary", 90, AccuracyHigh},
		{"just below high", 89.9, AccuracyGood},
		{"good boundary", 80, AccuracyGood},
		{"just below good", 79.99, AccuracyModerate},
		{"zero", 0, AccuracyModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AccuracyBadge(tt.confidence); got != tt.want {
				t.Errorf("AccuracyBadge(%v) = %q, want %q", tt.confidence, got, tt.want)
			}
		})
	}
}

func TestPredictResponse_ConfidenceText(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{92.44, "92.4%"},
		{80, "80.0%"},
		{0, "0.0%"},
	}

	for _, tt := range tests {
		p := PredictResponse{Confidence: tt.confidence}
		if got := p.ConfidenceText(); got != tt.want {
			t.Errorf("ConfidenceText() for %v = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}
