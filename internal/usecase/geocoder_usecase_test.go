package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/domain"
	apperrors "github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/request"
	"github.com/w3w-geocoder/internal/usecase"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

func TestGeocoderUseCase_ConvertTo3wa(t *testing.T) {
	ctx := context.Background()
	coord := domain.Coordinate{Lat: 51.521251, Lng: -0.203586}

	t.Run("json", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		repo.On("ConvertTo3wa", ctx, coord, "de").
			Return(&domain.ConvertedAddress{Words: "eingeschränkt.ereignis.bärtig"}, nil).Once()

		uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
		resp, err := uc.ConvertTo3wa(ctx, dto.ConvertTo3waRequest{Coordinates: "51.521251,-0.203586", Language: "de"})
		require.NoError(t, err)
		assert.Equal(t, "eingeschränkt.ereignis.bärtig", resp.Words)
		assert.Nil(t, resp.GeoJSON)
		repo.AssertExpectations(t)
	})

	t.Run("geojson", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		raw := json.RawMessage(`{"type":"FeatureCollection"}`)
		repo.On("Raw", ctx, request.ConvertTo3wa, mock.MatchedBy(func(p request.Params) bool {
			return p.Format == request.FormatGeoJSON && *p.Coordinates == coord
		})).Return(raw, nil).Once()

		uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
		resp, err := uc.ConvertTo3wa(ctx, dto.ConvertTo3waRequest{Coordinates: "51.521251,-0.203586", Format: "geojson"})
		require.NoError(t, err)
		assert.Nil(t, resp.ConvertedAddress)
		assert.JSONEq(t, string(raw), string(resp.GeoJSON))
	})

	t.Run("bad coordinates", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())

		_, err := uc.ConvertTo3wa(ctx, dto.ConvertTo3waRequest{Coordinates: "north"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidParameterShape))
		repo.AssertNotCalled(t, "ConvertTo3wa", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("remote error", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		repo.On("ConvertTo3wa", ctx, coord, "").
			Return(nil, apperrors.Remote("QuotaExceeded", "quota exceeded", 402)).Once()

		uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
		_, err := uc.ConvertTo3wa(ctx, dto.ConvertTo3waRequest{Coordinates: "51.521251,-0.203586"})
		assert.True(t, errors.Is(err, apperrors.ErrRemoteAPI))
	})
}

func TestGeocoderUseCase_ConvertToCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := &MockGeocoderRepository{}
	repo.On("ConvertToCoordinates", ctx, "filled.count.soap").
		Return(&domain.ConvertedAddress{Coordinates: domain.Coordinate{Lat: 51.520847, Lng: -0.195521}}, nil).Once()

	uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
	resp, err := uc.ConvertToCoordinates(ctx, dto.ConvertToCoordinatesRequest{Words: "filled.count.soap"})
	require.NoError(t, err)
	assert.Equal(t, 51.520847, resp.Coordinates.Lat)
}

func TestAutosuggestOptions(t *testing.T) {
	land := false
	req := dto.AutosuggestRequest{
		Input:         "index.home.r",
		Language:      "fr",
		NResults:      3,
		Focus:         &domain.Coordinate{Lat: 51.4, Lng: -0.3},
		InputType:     "text",
		PreferLand:    &land,
		ClipToCountry: []string{"GB"},
		ClipToCircle:  &domain.Circle{Center: domain.Coordinate{Lat: 51, Lng: 0}, RadiusKm: 10},
	}

	spec, err := request.Build(request.Autosuggest, request.Params{
		Input:   req.Input,
		Options: usecase.AutosuggestOptions(req),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"input=index.home.r&language=fr&n-results=3&focus=51.400000%2C-0.300000&input-type=text"+
			"&prefer-land=false&clip-to-country=GB&clip-to-circle=51.000000%2C0.000000%2C10&format=json",
		spec.Encode())

	assert.Empty(t, usecase.AutosuggestOptions(dto.AutosuggestRequest{Input: "x"}))
}

func TestGeocoderUseCase_Autosuggest(t *testing.T) {
	ctx := context.Background()
	repo := &MockGeocoderRepository{}
	repo.On("Autosuggest", ctx, "index.home.r", mock.Anything).
		Return(&domain.AutosuggestResult{Suggestions: []domain.Suggestion{{Words: "index.home.raft", Rank: 1}}}, nil).Once()

	uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
	resp, err := uc.Autosuggest(ctx, dto.AutosuggestRequest{Input: "index.home.r", NResults: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "index.home.raft", resp.Suggestions[0].Words)
}

func TestGeocoderUseCase_GridSection(t *testing.T) {
	ctx := context.Background()
	box := domain.BoundingBox{
		NorthEast: domain.Coordinate{Lat: 52.208867, Lng: 0.117540},
		SouthWest: domain.Coordinate{Lat: 52.207988, Lng: 0.116126},
	}

	t.Run("json", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		repo.On("GridSection", ctx, box).Return(&domain.GridSection{Lines: []domain.GridLine{{}}}, nil).Once()

		uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
		resp, err := uc.GridSection(ctx, dto.GridSectionRequest{BoundingBox: "52.207988,0.116126,52.208867,0.117540"})
		require.NoError(t, err)
		assert.Len(t, resp.Lines, 1)
	})

	t.Run("inverted box", func(t *testing.T) {
		uc := usecase.NewGeocoderUseCase(&MockGeocoderRepository{}, zap.NewNop())
		_, err := uc.GridSection(ctx, dto.GridSectionRequest{BoundingBox: "52.208867,0.117540,52.207988,0.116126"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidParameterShape))
	})
}

func TestGeocoderUseCase_AvailableLanguages(t *testing.T) {
	ctx := context.Background()
	repo := &MockGeocoderRepository{}
	repo.On("AvailableLanguages", ctx).
		Return(&domain.Languages{Languages: []domain.Language{{Code: "en", Name: "English", NativeName: "English"}}}, nil).Once()

	uc := usecase.NewGeocoderUseCase(repo, zap.NewNop())
	langs, err := uc.AvailableLanguages(ctx)
	require.NoError(t, err)
	assert.Len(t, langs.Languages, 1)
}
