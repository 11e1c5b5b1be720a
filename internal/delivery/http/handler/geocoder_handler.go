package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/pkg/utils"
	"github.com/w3w-geocoder/internal/pkg/validator"
	"github.com/w3w-geocoder/internal/usecase"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

// GeocoderHandler - v3 conversion, autosuggest and grid endpoints
type GeocoderHandler struct {
	geocoderUC *usecase.GeocoderUseCase
	logger     *zap.Logger
}

func NewGeocoderHandler(geocoderUC *usecase.GeocoderUseCase, logger *zap.Logger) *GeocoderHandler {
	return &GeocoderHandler{
		geocoderUC: geocoderUC,
		logger:     logger,
	}
}

// ConvertTo3wa godoc
// @Summary Convert coordinates to a three word address
// @Tags Geocoder
// @Produce json
// @Param coordinates query string true "lat,lng" example(51.521251,-0.203586)
// @Param language query string false "Address language" default(en)
// @Param format query string false "json or geojson" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.ConvertResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/convert-to-3wa [get]
func (h *GeocoderHandler) ConvertTo3wa(c *fiber.Ctx) error {
	var req dto.ConvertTo3waRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoderUC.ConvertTo3wa(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, requestMeta(c))
}

// ConvertToCoordinates godoc
// @Summary Convert a three word address to coordinates
// @Tags Geocoder
// @Produce json
// @Param words query string true "Three word address" example(filled.count.soap)
// @Param format query string false "json or geojson" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.ConvertResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/convert-to-coordinates [get]
func (h *GeocoderHandler) ConvertToCoordinates(c *fiber.Ctx) error {
	var req dto.ConvertToCoordinatesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoderUC.ConvertToCoordinates(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, requestMeta(c))
}

// Autosuggest godoc
// @Summary Suggest three word addresses for partial input
// @Description Focus, clipping and voice input options map one to one onto the what3words autosuggest parameters.
// @Tags Geocoder
// @Accept json
// @Produce json
// @Param request body dto.AutosuggestRequest true "Input and options"
// @Success 200 {object} utils.SuccessResponse{data=dto.AutosuggestResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/autosuggest [post]
func (h *GeocoderHandler) Autosuggest(c *fiber.Ctx) error {
	var req dto.AutosuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoderUC.Autosuggest(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	meta := requestMeta(c)
	meta.Total = result.Total
	return utils.SendSuccess(c, result, meta)
}

// GridSection godoc
// @Summary Grid lines inside a bounding box
// @Description The box diagonal must not exceed 4km; larger boxes are rejected by what3words.
// @Tags Geocoder
// @Produce json
// @Param bounding-box query string true "south_lat,west_lng,north_lat,east_lng" example(52.207988,0.116126,52.208867,0.117540)
// @Param format query string false "json or geojson" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.GridSectionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/grid-section [get]
func (h *GeocoderHandler) GridSection(c *fiber.Ctx) error {
	var req dto.GridSectionRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoderUC.GridSection(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, requestMeta(c))
}

// AvailableLanguages godoc
// @Summary Languages three word addresses are available in
// @Tags Geocoder
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Languages}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/available-languages [get]
func (h *GeocoderHandler) AvailableLanguages(c *fiber.Ctx) error {
	result, err := h.geocoderUC.AvailableLanguages(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	meta := requestMeta(c)
	meta.Total = len(result.Languages)
	return utils.SendSuccess(c, result, meta)
}
