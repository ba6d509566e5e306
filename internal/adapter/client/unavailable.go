package client

import (
	"context"

	"yujuris-api/internal/domain/entity"
)

// Unavailable stands in for the document analysis and template rendering
// backends until they exist.
type Unavailable struct{}

func (Unavailable) Analyze(context.Context, entity.DocumentRequest) (*entity.DocumentAnalysis, error) {
	return nil, entity.ErrNotAvailable
}

func (Unavailable) Generate(context.Context, entity.Template, map[string]string) ([]byte, error) {
	return nil, entity.ErrNotAvailable
}
