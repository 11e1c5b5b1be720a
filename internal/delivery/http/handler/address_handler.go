package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/delivery/http/middleware"
	"github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/pkg/utils"
	"github.com/w3w-geocoder/internal/pkg/validator"
	"github.com/w3w-geocoder/internal/request"
	"github.com/w3w-geocoder/internal/usecase"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

// AddressHandler - address matcher endpoints and the legacy v2 suggestions
type AddressHandler struct {
	addressUC *usecase.AddressUseCase
	logger    *zap.Logger
}

func NewAddressHandler(addressUC *usecase.AddressUseCase, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		addressUC: addressUC,
		logger:    logger,
	}
}

// Possible godoc
// @Summary Check whether text is shaped like a three word address
// @Description Purely lexical; no request is made to what3words.
// @Tags Address
// @Produce json
// @Param text query string true "Text to check" example(filled.count.soap)
// @Success 200 {object} utils.SuccessResponse{data=dto.PossibleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/possible [get]
func (h *AddressHandler) Possible(c *fiber.Ctx) error {
	req, err := h.parseText(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, h.addressUC.Possible(req), requestMeta(c))
}

// Find godoc
// @Summary Find three word address shaped substrings in text
// @Tags Address
// @Produce json
// @Param text query string true "Free text"
// @Success 200 {object} utils.SuccessResponse{data=dto.FindResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/find [get]
func (h *AddressHandler) Find(c *fiber.Ctx) error {
	req, err := h.parseText(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := h.addressUC.Find(req)
	meta := requestMeta(c)
	meta.Total = result.Total
	return utils.SendSuccess(c, result, meta)
}

// Valid godoc
// @Summary Check that text is an existing three word address
// @Description Makes at most one autosuggest request.
// @Tags Address
// @Produce json
// @Param text query string true "Text to check" example(filled.count.soap)
// @Success 200 {object} utils.SuccessResponse{data=dto.ValidResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/address/valid [get]
func (h *AddressHandler) Valid(c *fiber.Ctx) error {
	req, err := h.parseText(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.addressUC.Valid(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, requestMeta(c))
}

// LegacyAutosuggest godoc
// @Summary v2 autosuggest with a clip region
// @Description clip is one of {"type":"none"}, {"type":"focus","distance":d}, {"type":"radius","lat":..,"lng":..,"distance":d} or {"type":"bbox","ne":{..},"sw":{..}}.
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body dto.LegacyAutosuggestRequest true "Address and clipping"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/legacy/autosuggest [post]
func (h *AddressHandler) LegacyAutosuggest(c *fiber.Ctx) error {
	return h.legacySuggest(c, request.LegacyAutosuggest)
}

// LegacyAutosuggestML godoc
// @Summary v2 multilingual autosuggest with a clip region
// @Description Same body as /api/v1/legacy/autosuggest; lang is the language the input was spoken or typed in.
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body dto.LegacyAutosuggestRequest true "Address and clipping"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/legacy/autosuggest-ml [post]
func (h *AddressHandler) LegacyAutosuggestML(c *fiber.Ctx) error {
	return h.legacySuggest(c, request.LegacyAutosuggestML)
}

// LegacyStandardBlend godoc
// @Summary v2 standardblend
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body dto.LegacyAutosuggestRequest true "Address and focus; clip is rejected"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/legacy/standardblend [post]
func (h *AddressHandler) LegacyStandardBlend(c *fiber.Ctx) error {
	return h.legacySuggest(c, request.LegacyStandardBlend)
}

// LegacyStandardBlendML godoc
// @Summary v2 multilingual standardblend
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body dto.LegacyAutosuggestRequest true "Address and focus; clip is rejected"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/legacy/standardblend-ml [post]
func (h *AddressHandler) LegacyStandardBlendML(c *fiber.Ctx) error {
	return h.legacySuggest(c, request.LegacyStandardBlendML)
}

func (h *AddressHandler) legacySuggest(c *fiber.Ctx, op request.Operation) error {
	var req dto.LegacyAutosuggestRequest
	if err := c.BodyParser(&req); err != nil {
		var gerr *errors.GeocoderError
		if stderrors.As(err, &gerr) {
			return utils.SendError(c, gerr)
		}
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	raw, err := h.addressUC.LegacySuggest(c.UserContext(), op, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendRaw(c, raw, requestMeta(c))
}

func (h *AddressHandler) parseText(c *fiber.Ctx) (dto.AddressTextRequest, error) {
	var req dto.AddressTextRequest
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest
	}
	return req, validator.Validate(&req)
}

func requestMeta(c *fiber.Ctx) *utils.Meta {
	return &utils.Meta{RequestID: middleware.GetRequestID(c)}
}
