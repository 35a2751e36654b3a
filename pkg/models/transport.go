package models

// TextAnalysisRequest represents a request to analyze inline text
type TextAnalysisRequest struct {
	Text         string       `json:"text" binding:"required"`
	AnalysisType AnalysisType `json:"analysis_type,omitempty"`
	FormatHint   DataFormat   `json:"format_hint,omitempty"`
}

// BatchAnalysisRequest represents a request to analyze an ordered list of texts
type BatchAnalysisRequest struct {
	Texts        []string     `json:"texts" binding:"required"`
	AnalysisType AnalysisType `json:"analysis_type,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ServiceInfo is the payload of the root endpoint
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the payload of the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
