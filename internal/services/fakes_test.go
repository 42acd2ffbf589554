package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"ayurvignana/internal/classifier"
	"ayurvignana/internal/db"
	"ayurvignana/internal/models"
)

type fakeClassifier struct {
	prediction *classifier.Prediction
	err        error
	gotImage   []byte
}

func (f *fakeClassifier) Classify(_ context.Context, _ string, image io.Reader) (*classifier.Prediction, error) {
	data, err := io.ReadAll(image)
	if err != nil {
		return nil, err
	}
	f.gotImage = data
	if f.err != nil {
		return nil, f.err
	}
	p := *f.prediction
	return &p, nil
}

type fakeHerbStore struct {
	mu        sync.Mutex
	herbs     map[string]*models.Herb
	recorded  []models.Identification
	lookupErr error
	recordErr error
}

func newFakeHerbStore(herbs ...models.Herb) *fakeHerbStore {
	s := &fakeHerbStore{herbs: make(map[string]*models.Herb)}
	for i := range herbs {
		s.herbs[herbs[i].Name] = &herbs[i]
	}
	return s
}

func (s *fakeHerbStore) GetHerbByName(_ context.Context, name string) (*models.Herb, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	h, ok := s.herbs[name]
	if !ok {
		return nil, db.ErrHerbNotFound
	}
	return h, nil
}

func (s *fakeHerbStore) RecordIdentification(_ context.Context, ident *models.Identification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded = append(s.recorded, *ident)
	return nil
}

func (s *fakeHerbStore) ListRecentIdentifications(_ context.Context, limit int) ([]models.Identification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.recorded) {
		limit = len(s.recorded)
	}
	out := make([]models.Identification, 0, limit)
	for i := len(s.recorded) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.recorded[i])
	}
	return out, nil
}

var errBoom = errors.New("boom")
