package dto

import "time"

type GenerateResumeResponse struct {
	Status string `json:"status"`
	PdfURL string `json:"pdf_url"`
}

type GenerationResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	PublicURL  string    `json:"pdf_url,omitempty"`
	Status     string    `json:"status"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
