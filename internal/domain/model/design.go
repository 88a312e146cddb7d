package model

// FabricAnalysis is the result of analyzing an uploaded fabric photo.
// Sufficient gates downstream style feasibility checks.
type FabricAnalysis struct {
	Type       string
	Color      string
	Pattern    string
	Quality    string
	Length     *float64
	Width      *float64
	Sufficient bool
}

// DesignStyle is a generation preset offered by the design studio.
type DesignStyle string

const (
	StyleTraditional DesignStyle = "traditional"
	StyleModern      DesignStyle = "modern"
	StyleFusion      DesignStyle = "fusion"
	StyleBridal      DesignStyle = "bridal"
	StyleCasual      DesignStyle = "casual"
)

// Design is a generated dress mockup a customer can pick and order.
type Design struct {
	ID          string
	Name        string
	Style       DesignStyle
	Neckline    string
	Image       string
	Accessories []Accessory
}

// Accessory is a marketplace catalog item attachable to a design or order.
// IDs are unique within the catalog.
type Accessory struct {
	ID       int64
	Name     string
	Price    float64
	Category string
	Image    *string
}
