package entity

import (
	"strings"
	"time"
)

// Article is an entry of the legal library.
type Article struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Code         string    `json:"code"`
	Article      string    `json:"article"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	Jurisdiction string    `json:"jurisdiction"`
	URL          string    `json:"url,omitempty"`
	Premium      bool      `json:"premium"`
	LastUpdated  time.Time `json:"last_updated"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldDate   FieldType = "date"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

type TemplateField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Premium     bool            `json:"premium"`
	Fields      []TemplateField `json:"fields"`
}

// MissingFields returns the ids of required fields absent or blank in values.
func (t Template) MissingFields(values map[string]string) []string {
	var missing []string
	for _, f := range t.Fields {
		if !f.Required {
			continue
		}
		if v, ok := values[f.ID]; !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// DocumentAnalysis is the outcome of reviewing an uploaded document.
type DocumentAnalysis struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	Recommendations []string `json:"recommendations"`
	RiskLevel       string   `json:"risk_level"`
}

type DocumentRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Plan    string `json:"plan"`
}

type TemplateRequest struct {
	Plan   string            `json:"plan"`
	Fields map[string]string `json:"fields"`
}
