package models

import "encoding/json"

// AnalyzeResponse is the success body of POST /analyze. Feedback carries the
// model's JSON verbatim, or {"raw": <text>} when the output was not valid
// JSON. The URLs are null when the hosting step was skipped or failed.
type AnalyzeResponse struct {
	Feedback   json.RawMessage `json:"feedback"`
	PDFURL     *string         `json:"pdf_url"`
	PreviewURL *string         `json:"preview_url"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
