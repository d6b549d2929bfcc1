package main

import (
	"context"
)

// HealthOutput reports liveness and the size of the loaded catalog
type HealthOutput struct {
	Body struct {
		Message    string `json:"message" example:"pong" doc:"Response message"`
		Categories int    `json:"categories" example:"4" doc:"Number of categories offered"`
		Units      int    `json:"units" example:"16" doc:"Number of units across all categories"`
	}
}

func (app *App) handlePing(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	resp := &HealthOutput{}
	resp.Body.Message = "pong"

	catalog := app.conversionService.Catalog()
	resp.Body.Categories = len(catalog)
	for _, c := range catalog {
		resp.Body.Units += len(c.Units)
	}
	return resp, nil
}
