package dto

// WorkflowStepRequest sets the customer's current workflow step.
type WorkflowStepRequest struct {
	Step string `json:"step"`
}

// FabricAnalysisResponse is the studio's read of an uploaded fabric photo.
type FabricAnalysisResponse struct {
	Type       string   `json:"type"`
	Color      string   `json:"color"`
	Pattern    string   `json:"pattern"`
	Quality    string   `json:"quality"`
	Length     *float64 `json:"length,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	Sufficient bool     `json:"sufficient"`
}

// WorkflowStateResponse is a snapshot of the customer's design session.
type WorkflowStateResponse struct {
	Step           string                  `json:"step"`
	Fabric         *string                 `json:"fabric,omitempty"`
	Analysis       *FabricAnalysisResponse `json:"analysis,omitempty"`
	Designs        []DesignResponse        `json:"designs,omitempty"`
	SelectedDesign *DesignResponse         `json:"selected_design,omitempty"`
	Accessories    []AccessoryResponse     `json:"accessories"`
	UserImage      *string                 `json:"user_image,omitempty"`
}

// AddAccessoryRequest attaches a catalog item to the session selection.
type AddAccessoryRequest struct {
	AccessoryID int64 `json:"accessory_id"`
}

// TryOnRequest submits the customer photo for a virtual fitting.
type TryOnRequest struct {
	Image string `json:"image"`
}

// TryOnResponse carries the composited try-on preview.
type TryOnResponse struct {
	Image string `json:"image"`
}

// FabricUploadResponse returns the stored fabric reference.
type FabricUploadResponse struct {
	Fabric string `json:"fabric"`
}

// AnalyzeFabricRequest carries optional stitching instructions.
type AnalyzeFabricRequest struct {
	Instructions string `json:"instructions"`
}
