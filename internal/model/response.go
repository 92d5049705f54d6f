package model

// AnswerResponse is the single success shape of both ask endpoints.
// AnswerText is always present; on provider failure it carries the fixed
// fallback sentence rather than an error.
type AnswerResponse struct {
	AnswerText string `json:"answer_text"`
}

// ErrorResponse is the boundary validation error shape.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
