// Package docs is generated by swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/convert-to-3wa": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Geocoder"],
                "summary": "Convert coordinates to a three word address",
                "parameters": [
                    {"type": "string", "example": "51.521251,-0.203586", "description": "lat,lng", "name": "coordinates", "in": "query", "required": true},
                    {"type": "string", "default": "en", "description": "Address language", "name": "language", "in": "query"},
                    {"type": "string", "default": "json", "description": "json or geojson", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.ConvertResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/convert-to-coordinates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Geocoder"],
                "summary": "Convert a three word address to coordinates",
                "parameters": [
                    {"type": "string", "example": "filled.count.soap", "description": "Three word address", "name": "words", "in": "query", "required": true},
                    {"type": "string", "default": "json", "description": "json or geojson", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.ConvertResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/autosuggest": {
            "post": {
                "description": "Focus, clipping and voice input options map one to one onto the what3words autosuggest parameters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Geocoder"],
                "summary": "Suggest three word addresses for partial input",
                "parameters": [
                    {"description": "Input and options", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AutosuggestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.AutosuggestResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/grid-section": {
            "get": {
                "description": "The box diagonal must not exceed 4km; larger boxes are rejected by what3words.",
                "produces": ["application/json"],
                "tags": ["Geocoder"],
                "summary": "Grid lines inside a bounding box",
                "parameters": [
                    {"type": "string", "example": "52.207988,0.116126,52.208867,0.117540", "description": "south_lat,west_lng,north_lat,east_lng", "name": "bounding-box", "in": "query", "required": true},
                    {"type": "string", "default": "json", "description": "json or geojson", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.GridSectionResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/available-languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Geocoder"],
                "summary": "Languages three word addresses are available in",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Languages"}}}]}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/address/possible": {
            "get": {
                "description": "Purely lexical; no request is made to what3words.",
                "produces": ["application/json"],
                "tags": ["Address"],
                "summary": "Check whether text is shaped like a three word address",
                "parameters": [
                    {"type": "string", "example": "filled.count.soap", "description": "Text to check", "name": "text", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.PossibleResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/address/find": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Address"],
                "summary": "Find three word address shaped substrings in text",
                "parameters": [
                    {"type": "string", "description": "Free text", "name": "text", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.FindResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/address/valid": {
            "get": {
                "description": "Makes at most one autosuggest request.",
                "produces": ["application/json"],
                "tags": ["Address"],
                "summary": "Check that text is an existing three word address",
                "parameters": [
                    {"type": "string", "example": "filled.count.soap", "description": "Text to check", "name": "text", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.ValidResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/legacy/autosuggest": {
            "post": {
                "description": "clip is one of {\"type\":\"none\"}, {\"type\":\"focus\",\"distance\":d}, {\"type\":\"radius\",\"lat\":..,\"lng\":..,\"distance\":d} or {\"type\":\"bbox\",\"ne\":{..},\"sw\":{..}}.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Legacy"],
                "summary": "v2 autosuggest with a clip region",
                "parameters": [
                    {"description": "Address and clipping", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LegacyAutosuggestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/legacy/autosuggest-ml": {
            "post": {
                "description": "Same body as /api/v1/legacy/autosuggest; lang is the language the input was spoken or typed in.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Legacy"],
                "summary": "v2 multilingual autosuggest with a clip region",
                "parameters": [
                    {"description": "Address and clipping", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LegacyAutosuggestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/legacy/standardblend": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Legacy"],
                "summary": "v2 standardblend",
                "parameters": [
                    {"description": "Address and focus; clip is rejected", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LegacyAutosuggestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/legacy/standardblend-ml": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Legacy"],
                "summary": "v2 multilingual standardblend",
                "parameters": [
                    {"description": "Address and focus; clip is rejected", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LegacyAutosuggestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Coordinate": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "domain.BoundingBox": {
            "type": "object",
            "properties": {"ne": {"$ref": "#/definitions/domain.Coordinate"}, "sw": {"$ref": "#/definitions/domain.Coordinate"}}
        },
        "domain.Circle": {
            "type": "object",
            "properties": {"center": {"$ref": "#/definitions/domain.Coordinate"}, "radius_km": {"type": "number"}}
        },
        "domain.Square": {
            "type": "object",
            "properties": {"northeast": {"$ref": "#/definitions/domain.Coordinate"}, "southwest": {"$ref": "#/definitions/domain.Coordinate"}}
        },
        "domain.Suggestion": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "distanceToFocusKm": {"type": "number"},
                "language": {"type": "string"},
                "nearestPlace": {"type": "string"},
                "rank": {"type": "integer"},
                "words": {"type": "string"}
            }
        },
        "domain.GridLine": {
            "type": "object",
            "properties": {"start": {"$ref": "#/definitions/domain.Coordinate"}, "end": {"$ref": "#/definitions/domain.Coordinate"}}
        },
        "domain.Language": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "name": {"type": "string"}, "nativeName": {"type": "string"}}
        },
        "domain.Languages": {
            "type": "object",
            "properties": {"languages": {"type": "array", "items": {"$ref": "#/definitions/domain.Language"}}}
        },
        "dto.ConvertResponse": {
            "type": "object",
            "properties": {
                "coordinates": {"$ref": "#/definitions/domain.Coordinate"},
                "country": {"type": "string"},
                "geojson": {"type": "object"},
                "language": {"type": "string"},
                "map": {"type": "string"},
                "nearestPlace": {"type": "string"},
                "square": {"$ref": "#/definitions/domain.Square"},
                "words": {"type": "string"}
            }
        },
        "dto.AutosuggestRequest": {
            "type": "object",
            "required": ["input"],
            "properties": {
                "clip_to_bounding_box": {"$ref": "#/definitions/domain.BoundingBox"},
                "clip_to_circle": {"$ref": "#/definitions/domain.Circle"},
                "clip_to_country": {"type": "array", "items": {"type": "string"}},
                "clip_to_polygon": {"type": "array", "items": {"$ref": "#/definitions/domain.Coordinate"}},
                "focus": {"$ref": "#/definitions/domain.Coordinate"},
                "input": {"type": "string"},
                "input_type": {"type": "string", "enum": ["text", "vocon-hybrid", "nmdp-asr", "generic-voice"]},
                "language": {"type": "string"},
                "n_focus_results": {"type": "integer", "maximum": 100, "minimum": 1},
                "n_results": {"type": "integer", "maximum": 100, "minimum": 1},
                "prefer_land": {"type": "boolean"}
            }
        },
        "dto.AutosuggestResponse": {
            "type": "object",
            "properties": {
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/domain.Suggestion"}},
                "total": {"type": "integer"}
            }
        },
        "dto.GridSectionResponse": {
            "type": "object",
            "properties": {
                "geojson": {"type": "object"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/domain.GridLine"}}
            }
        },
        "dto.PossibleResponse": {
            "type": "object",
            "properties": {"possible": {"type": "boolean"}, "text": {"type": "string"}}
        },
        "dto.FindResponse": {
            "type": "object",
            "properties": {"matches": {"type": "array", "items": {"type": "string"}}, "total": {"type": "integer"}}
        },
        "dto.ValidResponse": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "valid": {"type": "boolean"}}
        },
        "dto.LegacyAutosuggestRequest": {
            "type": "object",
            "required": ["addr"],
            "properties": {
                "addr": {"type": "string"},
                "clip": {"type": "object"},
                "focus": {"$ref": "#/definitions/domain.Coordinate"},
                "lang": {"type": "string"}
            }
        },
        "errors.GeocoderError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "field": {"type": "string"}, "message": {"type": "string"}}
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.GeocoderError"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {"request_id": {"type": "string"}, "time_ms": {"type": "number"}, "total": {"type": "integer"}}
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {"data": {}, "meta": {"$ref": "#/definitions/utils.Meta"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "what3words Geocoder API",
	Description:      "Converts between coordinates and three word addresses, suggests addresses for partial input and recognises address shaped text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
