package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/request"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) ConvertTo3wa(ctx context.Context, coord domain.Coordinate, language string) (*domain.ConvertedAddress, error) {
	args := m.Called(ctx, coord, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConvertedAddress), args.Error(1)
}

func (m *MockGeocoderRepository) ConvertToCoordinates(ctx context.Context, words string) (*domain.ConvertedAddress, error) {
	args := m.Called(ctx, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConvertedAddress), args.Error(1)
}

func (m *MockGeocoderRepository) Autosuggest(ctx context.Context, input string, opts ...request.AutosuggestOption) (*domain.AutosuggestResult, error) {
	args := m.Called(ctx, input, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutosuggestResult), args.Error(1)
}

func (m *MockGeocoderRepository) GridSection(ctx context.Context, box domain.BoundingBox) (*domain.GridSection, error) {
	args := m.Called(ctx, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridSection), args.Error(1)
}

func (m *MockGeocoderRepository) AvailableLanguages(ctx context.Context) (*domain.Languages, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Languages), args.Error(1)
}

func (m *MockGeocoderRepository) IsValid3wa(ctx context.Context, text string) (bool, error) {
	args := m.Called(ctx, text)
	return args.Bool(0), args.Error(1)
}

func (m *MockGeocoderRepository) Raw(ctx context.Context, op request.Operation, params request.Params) (json.RawMessage, error) {
	args := m.Called(ctx, op, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
