package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"ayurvignana/internal/classifier"
	"ayurvignana/internal/db"
	"ayurvignana/internal/metrics"
	"ayurvignana/internal/models"
	"ayurvignana/internal/validation"
)

// UploadURLPrefix is the public path uploaded images are served under.
const UploadURLPrefix = "/api/uploads/"

// ErrClassifierUnavailable wraps failures talking to the classification service.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// ImageError reports an unusable upload. Message is safe to show to users.
type ImageError struct {
	Message string
}

func (e *ImageError) Error() string {
	return e.Message
}

// Classifier predicts the herb shown in an image.
type Classifier interface {
	Classify(ctx context.Context, filename string, image io.Reader) (*classifier.Prediction, error)
}

// HerbStore is the catalog and identification log used by IdentificationService.
type HerbStore interface {
	GetHerbByName(ctx context.Context, name string) (*models.Herb, error)
	RecordIdentification(ctx context.Context, ident *models.Identification) error
	ListRecentIdentifications(ctx context.Context, limit int) ([]models.Identification, error)
}

// IdentifyResult is the outcome of identifying one image.
type IdentifyResult struct {
	Prediction classifier.Prediction
	Herb       *models.Herb // nil when the label is not in the catalog
	Filename   string
	ImageURL   string
}

// Response converts a successful result to its API shape.
func (r *IdentifyResult) Response() models.PredictResponse {
	resp := models.PredictResponse{
		Confidence: r.Prediction.Confidence,
		ImageURL:   r.ImageURL,
		Name:       r.Prediction.Label,
	}
	if r.Herb != nil {
		resp.Name = r.Herb.Name
		resp.Scientific = r.Herb.ScientificName
		resp.Nature = r.Herb.Nature
		resp.Dosha = r.Herb.DoshaCompatibility
		resp.Description = r.Herb.Description
	}
	return resp
}

// IdentificationService stores uploads, classifies them and looks up the herb.
type IdentificationService struct {
	classifier Classifier
	store      HerbStore
	uploadDir  string
	maxBytes   int64
}

// NewIdentificationService creates an identification service.
func NewIdentificationService(c Classifier, store HerbStore, uploadDir string, maxBytes int64) *IdentificationService {
	return &IdentificationService{
		classifier: c,
		store:      store,
		uploadDir:  uploadDir,
		maxBytes:   maxBytes,
	}
}

// Identify saves the upload and classifies it.
//
// When the predicted herb is missing from the catalog, the result still
// carries the prediction and the error is db.ErrHerbNotFound.
func (s *IdentificationService) Identify(ctx context.Context, file *multipart.FileHeader) (*IdentifyResult, error) {
	if file == nil {
		return nil, &ImageError{Message: "No image provided"}
	}
	if valid, msg := validation.ValidateImageUpload(file.Filename, file.Size, s.maxBytes); !valid {
		return nil, &ImageError{Message: msg}
	}

	filename := uuid.New().String() + "." + validation.ImageExtension(file.Filename)
	path := filepath.Join(s.uploadDir, filename)
	if err := saveUpload(file, path); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	pred, err := s.classify(ctx, path)
	if err != nil {
		os.Remove(path)
		metrics.RecordIdentification(metrics.IdentificationFailed)
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	result := &IdentifyResult{
		Prediction: *pred,
		Filename:   filename,
		ImageURL:   UploadURLPrefix + filename,
	}

	herb, herbErr := s.store.GetHerbByName(ctx, pred.Label)
	if herbErr != nil && !errors.Is(herbErr, db.ErrHerbNotFound) {
		os.Remove(path)
		metrics.RecordIdentification(metrics.IdentificationFailed)
		return nil, fmt.Errorf("failed to look up herb: %w", herbErr)
	}
	result.Herb = herb

	ident := &models.Identification{
		Filename:   filename,
		Label:      pred.Label,
		ClassIndex: pred.ClassIndex,
		Confidence: pred.Confidence,
		HerbFound:  herb != nil,
	}
	if err := s.store.RecordIdentification(ctx, ident); err != nil {
		slog.Error("failed to record identification", "label", pred.Label, "error", err)
	}

	if herb == nil {
		metrics.RecordIdentification(metrics.IdentificationNotFound)
		return result, db.ErrHerbNotFound
	}

	metrics.RecordIdentification(metrics.IdentificationFound)
	return result, nil
}

// Recent returns the newest identifications.
func (s *IdentificationService) Recent(ctx context.Context, limit int) ([]models.Identification, error) {
	return s.store.ListRecentIdentifications(ctx, limit)
}

func (s *IdentificationService) classify(ctx context.Context, path string) (*classifier.Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.classifier.Classify(ctx, filepath.Base(path), f)
}

func saveUpload(file *multipart.FileHeader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}
