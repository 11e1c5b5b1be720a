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

func TestAddressUseCase_Matcher(t *testing.T) {
	uc := usecase.NewAddressUseCase(&MockGeocoderRepository{}, zap.NewNop())

	assert.True(t, uc.Possible(dto.AddressTextRequest{Text: "filled.count.soap"}).Possible)
	assert.False(t, uc.Possible(dto.AddressTextRequest{Text: "not a 3wa"}).Possible)

	found := uc.Find(dto.AddressTextRequest{Text: `from "index.home.raft" to "filled.count.soap"`})
	assert.Equal(t, []string{"index.home.raft", "filled.count.soap"}, found.Matches)
	assert.Equal(t, 2, found.Total)
}

func TestAddressUseCase_Valid(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		repo.On("IsValid3wa", ctx, "filled.count.soap").Return(true, nil).Once()

		uc := usecase.NewAddressUseCase(repo, zap.NewNop())
		resp, err := uc.Valid(ctx, dto.AddressTextRequest{Text: "filled.count.soap"})
		require.NoError(t, err)
		assert.True(t, resp.Valid)
	})

	t.Run("error", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		repo.On("IsValid3wa", ctx, "filled.count.soap").
			Return(false, apperrors.Transport(errors.New("connection refused"))).Once()

		uc := usecase.NewAddressUseCase(repo, zap.NewNop())
		_, err := uc.Valid(ctx, dto.AddressTextRequest{Text: "filled.count.soap"})
		assert.True(t, errors.Is(err, apperrors.ErrTransportFailure))
	})
}

func TestAddressUseCase_LegacySuggest(t *testing.T) {
	ctx := context.Background()
	focus := &domain.Coordinate{Lat: 51.4, Lng: -0.3}

	var clip domain.ClipSpec
	require.NoError(t, json.Unmarshal([]byte(`{"type":"focus","distance":5}`), &clip))

	repo := &MockGeocoderRepository{}
	repo.On("Raw", ctx, request.LegacyAutosuggest, request.Params{
		Input: "index.home.r",
		Focus: focus,
		Clip:  domain.FocusClip{DistanceKm: 5},
	}).Return(json.RawMessage(`{"suggestions":[]}`), nil).Once()
	repo.On("Raw", ctx, request.LegacyStandardBlend, mock.Anything).
		Return(json.RawMessage(`{"blends":[]}`), nil).Once()

	uc := usecase.NewAddressUseCase(repo, zap.NewNop())

	raw, err := uc.LegacySuggest(ctx, request.LegacyAutosuggest, dto.LegacyAutosuggestRequest{Addr: "index.home.r", Focus: focus, Clip: &clip})
	require.NoError(t, err)
	assert.JSONEq(t, `{"suggestions":[]}`, string(raw))

	raw, err = uc.LegacySuggest(ctx, request.LegacyStandardBlend, dto.LegacyAutosuggestRequest{Addr: "index.home.r"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"blends":[]}`, string(raw))
	repo.AssertExpectations(t)
}

func TestAddressUseCase_LegacySuggestML(t *testing.T) {
	ctx := context.Background()

	repo := &MockGeocoderRepository{}
	repo.On("Raw", ctx, request.LegacyAutosuggestML, request.Params{Input: "index.home.r", Language: "de"}).
		Return(json.RawMessage(`{"suggestions":[]}`), nil).Once()
	repo.On("Raw", ctx, request.LegacyStandardBlendML, request.Params{Input: "index.home.r"}).
		Return(json.RawMessage(`{"blends":[]}`), nil).Once()

	uc := usecase.NewAddressUseCase(repo, zap.NewNop())

	_, err := uc.LegacySuggest(ctx, request.LegacyAutosuggestML, dto.LegacyAutosuggestRequest{Addr: "index.home.r", Language: "de"})
	require.NoError(t, err)
	_, err = uc.LegacySuggest(ctx, request.LegacyStandardBlendML, dto.LegacyAutosuggestRequest{Addr: "index.home.r"})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	t.Run("other operations refused", func(t *testing.T) {
		repo := &MockGeocoderRepository{}
		uc := usecase.NewAddressUseCase(repo, zap.NewNop())
		_, err := uc.LegacySuggest(ctx, request.LegacyGrid, dto.LegacyAutosuggestRequest{Addr: "index.home.r"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidParameterShape))
		repo.AssertNotCalled(t, "Raw", mock.Anything, mock.Anything, mock.Anything)
	})
}
