package schema

// MetricDefinition describes one derived view for the metrics display.
type MetricDefinition struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Formula string `json:"formula"`
	Notes   string `json:"notes,omitempty"`
}

// MetricsRenderModel contains all processed data needed for metrics display.
type MetricsRenderModel struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metrics     []MetricDefinition `json:"metrics"`
}
