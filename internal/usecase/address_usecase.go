package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/address"
	"github.com/w3w-geocoder/internal/domain/repository"
	"github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/request"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

// AddressUseCase - recognising three word addresses in text, plus the
// legacy v2 suggestion endpoints
type AddressUseCase struct {
	repo   repository.GeocoderRepository
	logger *zap.Logger
}

func NewAddressUseCase(repo repository.GeocoderRepository, logger *zap.Logger) *AddressUseCase {
	return &AddressUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *AddressUseCase) Possible(req dto.AddressTextRequest) *dto.PossibleResponse {
	return &dto.PossibleResponse{
		Text:     req.Text,
		Possible: address.IsPossible3wa(req.Text),
	}
}

func (uc *AddressUseCase) Find(req dto.AddressTextRequest) *dto.FindResponse {
	matches := address.FindAllPossible3wa(req.Text)
	return &dto.FindResponse{
		Matches: matches,
		Total:   len(matches),
	}
}

func (uc *AddressUseCase) Valid(ctx context.Context, req dto.AddressTextRequest) (*dto.ValidResponse, error) {
	ok, err := uc.repo.IsValid3wa(ctx, req.Text)
	if err != nil {
		uc.logger.Error("Failed to validate address", zap.String("text", req.Text), zap.Error(err))
		return nil, err
	}
	return &dto.ValidResponse{Text: req.Text, Valid: ok}, nil
}

// LegacySuggest runs one of the v2 suggestion calls: autosuggest,
// standardblend or their -ml variants.
func (uc *AddressUseCase) LegacySuggest(ctx context.Context, op request.Operation, req dto.LegacyAutosuggestRequest) (json.RawMessage, error) {
	if !op.IsLegacySuggestion() {
		return nil, errors.InvalidShape("operation", "%s is not a v2 suggestion call", op)
	}

	params := request.Params{
		Input:    req.Addr,
		Language: req.Language,
		Focus:    req.Focus,
	}
	if req.Clip != nil {
		params.Clip = req.Clip.Region
	}

	raw, err := uc.repo.Raw(ctx, op, params)
	if err != nil {
		uc.logger.Error("Legacy suggestion failed",
			zap.String("operation", string(op)),
			zap.Error(err))
		return nil, err
	}
	return raw, nil
}
