package dto

import "github.com/stitchmate/stitchmate/internal/domain/model"

// GenerateDesignsRequest picks the generation style preset.
type GenerateDesignsRequest struct {
	Style string `json:"style"`
}

// SelectDesignRequest picks one generated design for the order.
type SelectDesignRequest struct {
	DesignID string `json:"design_id"`
}

// DesignResponse describes a generated dress mockup.
type DesignResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Style       string              `json:"style"`
	Neckline    string              `json:"neckline"`
	Image       string              `json:"image"`
	Accessories []AccessoryResponse `json:"accessories,omitempty"`
}

// AccessoryResponse describes a catalog item.
type AccessoryResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    *string `json:"image,omitempty"`
}

// NewAccessoryResponse converts a catalog model.
func NewAccessoryResponse(a model.Accessory) AccessoryResponse {
	return AccessoryResponse{ID: a.ID, Name: a.Name, Price: a.Price, Category: a.Category, Image: a.Image}
}

// NewAccessoryResponses converts a slice of catalog models.
func NewAccessoryResponses(items []model.Accessory) []AccessoryResponse {
	resp := make([]AccessoryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewAccessoryResponse(item))
	}
	return resp
}

// NewDesignResponse converts a design model.
func NewDesignResponse(d model.Design) DesignResponse {
	return DesignResponse{
		ID:          d.ID,
		Name:        d.Name,
		Style:       string(d.Style),
		Neckline:    d.Neckline,
		Image:       d.Image,
		Accessories: NewAccessoryResponses(d.Accessories),
	}
}

// NewDesignResponses converts a slice of design models.
func NewDesignResponses(designs []model.Design) []DesignResponse {
	resp := make([]DesignResponse, 0, len(designs))
	for _, d := range designs {
		resp = append(resp, NewDesignResponse(d))
	}
	return resp
}

// NewFabricAnalysisResponse converts an analysis model.
func NewFabricAnalysisResponse(a model.FabricAnalysis) FabricAnalysisResponse {
	return FabricAnalysisResponse{
		Type:       a.Type,
		Color:      a.Color,
		Pattern:    a.Pattern,
		Quality:    a.Quality,
		Length:     a.Length,
		Width:      a.Width,
		Sufficient: a.Sufficient,
	}
}
