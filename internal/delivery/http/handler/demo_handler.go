package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/usecase"
	"github.com/w3w-geocoder/internal/usecase/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// DemoPageData - data for the lookup form template
type DemoPageData struct {
	Title          string
	Words          string
	Submitted      bool
	NearestPlace   string
	HasCoordinates bool
	Lat            float64
	Lng            float64
	Error          string
}

// DemoHandler - a single field form that resolves an address to coordinates
type DemoHandler struct {
	geocoderUC *usecase.GeocoderUseCase
	templates  *template.Template
	logger     *zap.Logger
}

func NewDemoHandler(geocoderUC *usecase.GeocoderUseCase, logger *zap.Logger) (*DemoHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &DemoHandler{
		geocoderUC: geocoderUC,
		templates:  tmpl,
		logger:     logger,
	}, nil
}

// Index renders the form and, when what3words is set, the lookup result.
// Lookup failures are shown on the page as "unknown".
func (h *DemoHandler) Index(c *fiber.Ctx) error {
	data := DemoPageData{
		Title: "what3words",
		Words: c.Query("what3words"),
	}

	if data.Words != "" {
		data.Submitted = true
		result, err := h.geocoderUC.ConvertToCoordinates(c.UserContext(), dto.ConvertToCoordinatesRequest{Words: data.Words})
		if err != nil {
			h.logger.Debug("Demo lookup failed", zap.String("words", data.Words), zap.Error(err))
			data.Error = err.Error()
		} else if result.ConvertedAddress != nil {
			data.NearestPlace = result.NearestPlace
			data.HasCoordinates = true
			data.Lat = result.Coordinates.Lat
			data.Lng = result.Coordinates.Lng
		}
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("Failed to render template", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
