package schema

import "time"

const BiteAnalysisCollection = "biteAnalyses"

// BiteLabelClass is the colour class of a bite photo.
type BiteLabelClass string

const (
	BiteLabelRed    BiteLabelClass = "red"
	BiteLabelYellow BiteLabelClass = "yellow"
	BiteLabelMuted  BiteLabelClass = "muted"
)

const (
	BiteLabelTextRed    = "Detected: red/pink area"
	BiteLabelTextYellow = "Detected: yellowish area"
	BiteLabelTextMuted  = "No clear red/yellow detected"
)

// ROI is a region of interest in normalized image coordinates. R is a
// fraction of the shorter image side.
type ROI struct {
	CX float64 `json:"cx" bson:"cx"`
	CY float64 `json:"cy" bson:"cy"`
	R  float64 `json:"r" bson:"r"`
}

// BiteAnalysisStats are the pixel counts behind a bite label.
type BiteAnalysisStats struct {
	Red                  int     `json:"red" bson:"red"`
	Yellow               int     `json:"yellow" bson:"yellow"`
	Total                int     `json:"total" bson:"total"`
	RedC                 int     `json:"redC" bson:"red_c"`
	YellowC              int     `json:"yellowC" bson:"yellow_c"`
	CenterTotal          int     `json:"centerTotal" bson:"center_total"`
	TileMaxRedDensity    float64 `json:"tileMaxRedDensity" bson:"tile_max_red_density"`
	TileMaxYellowDensity float64 `json:"tileMaxYellowDensity" bson:"tile_max_yellow_density"`
	StrongRed            int     `json:"strongRed" bson:"strong_red"`
	StrongRedC           int     `json:"strongRedC" bson:"strong_red_c"`
}

// BiteAnalysis is the output of one classifier run.
type BiteAnalysis struct {
	LabelText string            `json:"labelText" bson:"label_text"`
	LabelCls  BiteLabelClass    `json:"labelCls" bson:"label_cls"`
	Stats     BiteAnalysisStats `json:"stats" bson:"stats"`
	ROI       *ROI              `json:"roi" bson:"roi,omitempty"`
	Width     int               `json:"width" bson:"width"`
	Height    int               `json:"height" bson:"height"`
}

// BiteAnalysisReport is the stored form of a BiteAnalysis.
type BiteAnalysisReport struct {
	ID        string       `json:"id" bson:"_id"`
	AccountID string       `json:"account_id" bson:"account_id"`
	Analysis  BiteAnalysis `json:"analysis" bson:"analysis"`
	ImageURL  string       `json:"image_url" bson:"image_url"`
	ImageSize int          `json:"image_size_bytes" bson:"image_size_bytes"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
