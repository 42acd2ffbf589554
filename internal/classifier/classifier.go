// Package classifier talks to the remote image classification service.
//
// The service owns the model. This package only uploads images, reads back
// the class probabilities and maps the most likely index to a herb label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// Errors returned by the client.
var (
	ErrNoPredictions = errors.New("classifier returned no predictions")
	ErrUnhealthy     = errors.New("classifier is unhealthy")
)

// Prediction is the most likely class for an image.
type Prediction struct {
	Label      string
	ClassIndex int
	Confidence float64 // 0-100
}

// Client is an HTTP client for the classification service.
type Client struct {
	baseURL string
	classes []string
	client  *http.Client
}

// NewClient creates a classifier client. classes maps output indices to labels.
func NewClient(baseURL string, classes []string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		classes: append([]string(nil), classes...),
		client:  &http.Client{Timeout: timeout},
	}
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Classify uploads an image and returns the top prediction.
func (c *Client) Classify(ctx context.Context, filename string, image io.Reader) (*Prediction, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier error %s", readErrorBody(resp))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return Resolve(out.Probabilities, c.classes)
}

// Health queries the classifier health endpoint and returns its status.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrUnhealthy, readErrorBody(resp))
	}

	var out healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Status, nil
}

// Resolve picks the most probable class. Ties go to the lowest index.
// An index with no configured label resolves to "Unknown (Class N)".
func Resolve(probabilities []float64, classes []string) (*Prediction, error) {
	if len(probabilities) == 0 {
		return nil, ErrNoPredictions
	}

	best := 0
	for i, p := range probabilities {
		if p > probabilities[best] {
			best = i
		}
	}

	label := fmt.Sprintf("Unknown (Class %d)", best)
	if best < len(classes) {
		label = classes[best]
	}

	return &Prediction{
		Label:      label,
		ClassIndex: best,
		Confidence: probabilities[best] * 100,
	}, nil
}

func drainAndClose(r io.ReadCloser) {
	_, _ = io.Copy(io.Discard, r)
	r.Close()
}

func readErrorBody(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return resp.Status
	}
	return fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
}
