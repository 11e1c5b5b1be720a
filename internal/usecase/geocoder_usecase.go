package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/domain/repository"
	"github.com/w3w-geocoder/internal/request"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

// GeocoderUseCase - conversions, autosuggest and grid lookups against what3words
type GeocoderUseCase struct {
	repo   repository.GeocoderRepository
	logger *zap.Logger
}

// NewGeocoderUseCase - creates a GeocoderUseCase
func NewGeocoderUseCase(repo repository.GeocoderRepository, logger *zap.Logger) *GeocoderUseCase {
	return &GeocoderUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GeocoderUseCase) ConvertTo3wa(ctx context.Context, req dto.ConvertTo3waRequest) (*dto.ConvertResponse, error) {
	coord, err := domain.ParseCoordinate("coordinates", req.Coordinates)
	if err != nil {
		return nil, err
	}

	if request.Format(req.Format) == request.FormatGeoJSON {
		raw, err := uc.repo.Raw(ctx, request.ConvertTo3wa, request.Params{
			Coordinates: &coord,
			Language:    req.Language,
			Format:      request.FormatGeoJSON,
		})
		if err != nil {
			uc.logger.Error("Failed to convert coordinates", zap.Error(err))
			return nil, err
		}
		return &dto.ConvertResponse{GeoJSON: raw}, nil
	}

	addr, err := uc.repo.ConvertTo3wa(ctx, coord, req.Language)
	if err != nil {
		uc.logger.Error("Failed to convert coordinates", zap.Error(err))
		return nil, err
	}
	return &dto.ConvertResponse{ConvertedAddress: addr}, nil
}

func (uc *GeocoderUseCase) ConvertToCoordinates(ctx context.Context, req dto.ConvertToCoordinatesRequest) (*dto.ConvertResponse, error) {
	if request.Format(req.Format) == request.FormatGeoJSON {
		raw, err := uc.repo.Raw(ctx, request.ConvertToCoordinates, request.Params{
			Words:  req.Words,
			Format: request.FormatGeoJSON,
		})
		if err != nil {
			uc.logger.Error("Failed to convert words", zap.String("words", req.Words), zap.Error(err))
			return nil, err
		}
		return &dto.ConvertResponse{GeoJSON: raw}, nil
	}

	addr, err := uc.repo.ConvertToCoordinates(ctx, req.Words)
	if err != nil {
		uc.logger.Error("Failed to convert words", zap.String("words", req.Words), zap.Error(err))
		return nil, err
	}
	return &dto.ConvertResponse{ConvertedAddress: addr}, nil
}

func (uc *GeocoderUseCase) Autosuggest(ctx context.Context, req dto.AutosuggestRequest) (*dto.AutosuggestResponse, error) {
	result, err := uc.repo.Autosuggest(ctx, req.Input, AutosuggestOptions(req)...)
	if err != nil {
		uc.logger.Error("Autosuggest failed", zap.String("input", req.Input), zap.Error(err))
		return nil, err
	}

	return &dto.AutosuggestResponse{
		Suggestions: result.Suggestions,
		Total:       len(result.Suggestions),
	}, nil
}

// AutosuggestOptions maps the set fields of req to builder options.
func AutosuggestOptions(req dto.AutosuggestRequest) []request.AutosuggestOption {
	var opts []request.AutosuggestOption
	if req.Language != "" {
		opts = append(opts, request.FallbackLanguage(req.Language))
	}
	if req.NResults > 0 {
		opts = append(opts, request.NumberResults(req.NResults))
	}
	if req.Focus != nil {
		opts = append(opts, request.Focus(*req.Focus))
	}
	if req.NFocusResults > 0 {
		opts = append(opts, request.NumberFocusResults(req.NFocusResults))
	}
	if req.InputType != "" {
		opts = append(opts, request.InputTypeOption(request.InputType(req.InputType)))
	}
	if req.PreferLand != nil {
		opts = append(opts, request.PreferLand(*req.PreferLand))
	}
	if len(req.ClipToCountry) > 0 {
		opts = append(opts, request.ClipToCountry(req.ClipToCountry...))
	}
	if req.ClipToCircle != nil {
		opts = append(opts, request.ClipToCircle(req.ClipToCircle.Center, req.ClipToCircle.RadiusKm))
	}
	if req.ClipToBoundingBox != nil {
		opts = append(opts, request.ClipToBoundingBox(*req.ClipToBoundingBox))
	}
	if len(req.ClipToPolygon) > 0 {
		opts = append(opts, request.ClipToPolygon(req.ClipToPolygon...))
	}
	return opts
}

func (uc *GeocoderUseCase) GridSection(ctx context.Context, req dto.GridSectionRequest) (*dto.GridSectionResponse, error) {
	box, err := domain.ParseBoundingBox("bounding-box", req.BoundingBox)
	if err != nil {
		return nil, err
	}

	if d := box.DiagonalKm(); d > domain.MaxGridDiagonalKm {
		uc.logger.Warn("Grid section box exceeds the API limit",
			zap.Float64("diagonal_km", d),
			zap.Float64("limit_km", domain.MaxGridDiagonalKm))
	}

	if request.Format(req.Format) == request.FormatGeoJSON {
		raw, err := uc.repo.Raw(ctx, request.GridSection, request.Params{
			BoundingBox: &box,
			Format:      request.FormatGeoJSON,
		})
		if err != nil {
			uc.logger.Error("Failed to get grid section", zap.Error(err))
			return nil, err
		}
		return &dto.GridSectionResponse{GeoJSON: raw}, nil
	}

	grid, err := uc.repo.GridSection(ctx, box)
	if err != nil {
		uc.logger.Error("Failed to get grid section", zap.Error(err))
		return nil, err
	}
	return &dto.GridSectionResponse{GridSection: grid}, nil
}

func (uc *GeocoderUseCase) AvailableLanguages(ctx context.Context) (*domain.Languages, error) {
	langs, err := uc.repo.AvailableLanguages(ctx)
	if err != nil {
		uc.logger.Error("Failed to list languages", zap.Error(err))
		return nil, err
	}
	return langs, nil
}
