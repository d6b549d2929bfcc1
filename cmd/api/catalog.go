package main

import (
	"context"

	"unit-converter/internal/conversion"
)

// ListCategoriesOutput represents the response for the categories endpoint
type ListCategoriesOutput struct {
	Body []conversion.CategoryInfo
}

// handleListCategories returns the categories and units a client can offer for selection
func (app *App) handleListCategories(ctx context.Context, input *struct{}) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{Body: app.conversionService.Catalog()}, nil
}
