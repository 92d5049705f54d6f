package model

// AskTextRequest is the body of POST /ask-text. The three option fields are
// optional; unset values take the defaults, unknown values fail binding.
type AskTextRequest struct {
	Question string   `json:"question" binding:"required"`
	Level    Level    `json:"level" binding:"omitempty,oneof=basic advanced"`
	Style    Style    `json:"style" binding:"omitempty,oneof=detailed short"`
	Language Language `json:"language" binding:"omitempty,oneof=english hinglish"`
}

// ApplyDefaults fills unset option fields after binding.
func (r *AskTextRequest) ApplyDefaults() {
	if r.Level == "" {
		r.Level = DefaultLevel
	}
	if r.Style == "" {
		r.Style = DefaultStyle
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
}

// AskImageRequest carries a decoded /ask-image submission. Unlike the text
// path the options arrive as separate form/query fields, so they are parsed
// before this struct is built.
type AskImageRequest struct {
	Image    []byte
	MimeType string
	Level    Level
	Style    Style
	Language Language
}
