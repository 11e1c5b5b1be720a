package utils

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/w3w-geocoder/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *apperrors.GeocoderError `json:"error"`
}

type Meta struct {
	Total     int     `json:"total,omitempty"`
	RequestID string  `json:"request_id,omitempty"`
	TimeMSec  float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendRaw wraps an already encoded JSON document, such as a GeoJSON body
// from the API, without decoding it.
func SendRaw(c *fiber.Ctx, raw json.RawMessage, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: raw,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	var gerr *apperrors.GeocoderError
	if errors.As(err, &gerr) {
		status := gerr.StatusCode
		if status == 0 {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(ErrorResponse{
			Error: gerr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: apperrors.ErrInternalServer,
	})
}
