package main

import (
	"context"
	"errors"
	"math"

	"unit-converter/internal/conversion"
	"unit-converter/internal/types"

	"github.com/danielgtaylor/huma/v2"
)

// ConvertInput defines the query parameters for the convert endpoint
type ConvertInput struct {
	Category string  `query:"category" example:"length" doc:"Category identifier or label; inferred from the source unit when omitted"`
	From     string  `query:"from" required:"true" example:"kilometers" doc:"Source unit identifier, label or symbol"`
	To       string  `query:"to" required:"true" example:"miles" doc:"Target unit identifier, label or symbol"`
	Value    float64 `query:"value" required:"true" example:"1" doc:"Magnitude expressed in the source unit"`
}

// CreateConversionInput defines the JSON body for the conversions endpoint
type CreateConversionInput struct {
	Body struct {
		Category string  `json:"category,omitempty" example:"temperature" doc:"Category identifier or label; inferred from the source unit when omitted"`
		From     string  `json:"from" example:"celsius" doc:"Source unit identifier, label or symbol"`
		To       string  `json:"to" example:"fahrenheit" doc:"Target unit identifier, label or symbol"`
		Value    float64 `json:"value" example:"100" doc:"Magnitude expressed in the source unit"`
	}
}

// ConversionBody is the result of a conversion
type ConversionBody struct {
	Category  string  `json:"category" example:"length" doc:"Category identifier"`
	From      string  `json:"from" example:"kilometers" doc:"Source unit identifier"`
	To        string  `json:"to" example:"miles" doc:"Target unit identifier"`
	Value     float64 `json:"value" example:"1" doc:"Input magnitude"`
	Result    float64 `json:"result" example:"0.6213727366498068" doc:"Converted magnitude, unrounded"`
	Formatted string  `json:"formatted" example:"1 Kilometers = 0.6214 Miles" doc:"Human readable result"`
}

// ConvertOutput represents the response for the conversion endpoints
type ConvertOutput struct {
	Body ConversionBody
}

// handleConvert converts a value given as query parameters
func (app *App) handleConvert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	return app.convert(input.Category, input.From, input.To, input.Value)
}

// handleCreateConversion converts a value given as a JSON body
func (app *App) handleCreateConversion(ctx context.Context, input *CreateConversionInput) (*ConvertOutput, error) {
	return app.convert(input.Body.Category, input.Body.From, input.Body.To, input.Body.Value)
}

func (app *App) convert(category, from, to string, value float64) (*ConvertOutput, error) {
	// JSON cannot carry NaN or infinities
	if !isFinite(value) {
		return nil, huma.Error422UnprocessableEntity("value must be a finite number")
	}

	// Coerce text input into a request
	req, err := conversion.ParseRequest(category, from, to, value)
	if err != nil {
		if errors.Is(err, types.ErrUnknownUnit) || errors.Is(err, types.ErrUnknownCategory) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		app.logger.Error("failed to parse conversion request", "error", err)
		return nil, huma.Error500InternalServerError("failed to convert")
	}

	// Delegate to business layer
	result, err := app.conversionService.Convert(req)
	if err != nil {
		// Units outside the category are a client error
		if errors.Is(err, conversion.ErrInvalidUnit) {
			return nil, huma.Error400BadRequest(err.Error())
		}

		app.logger.Error("failed to convert",
			"category", req.Category,
			"from", req.From,
			"to", req.To,
			"error", err,
		)
		return nil, huma.Error500InternalServerError("failed to convert")
	}

	if !isFinite(result.Value) {
		return nil, huma.Error422UnprocessableEntity("result is out of range for the target unit")
	}

	return &ConvertOutput{
		Body: ConversionBody{
			Category:  result.Request.Category.String(),
			From:      result.Request.From.String(),
			To:        result.Request.To.String(),
			Value:     result.Request.Magnitude,
			Result:    result.Value,
			Formatted: result.Format(app.cfg.App.DecimalPlaces),
		},
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
