package usecase

import (
	"context"
	"fmt"
	"strings"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// Workspace fronts the document tools: template generation and document
// analysis. Both are delegated to collaborators.
type Workspace struct {
	templates repository.TemplateRepository
	generator repository.TemplateGenerator
	analyzer  repository.DocumentAnalyzer
}

func NewWorkspace(templates repository.TemplateRepository, gen repository.TemplateGenerator, analyzer repository.DocumentAnalyzer) *Workspace {
	return &Workspace{templates: templates, generator: gen, analyzer: analyzer}
}

func (w *Workspace) Templates(category string) []entity.Template {
	out := []entity.Template{}
	for _, t := range w.templates.List() {
		if category == "" || category == AllCategories || strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// GenerateTemplate checks access and required fields before delegating.
func (w *Workspace) GenerateTemplate(ctx context.Context, id string, req entity.TemplateRequest) ([]byte, error) {
	tpl, ok := w.templates.Get(id)
	if !ok {
		return nil, entity.ErrResourceNotFound
	}
	plan, err := entity.ParsePlanTier(req.Plan)
	if err != nil {
		return nil, err
	}
	if tpl.Premium && !entity.CapabilitiesOf(plan).PremiumTemplates {
		return nil, entity.ErrPlanNotAllowed
	}
	if missing := tpl.MissingFields(req.Fields); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrMissingFields, strings.Join(missing, ", "))
	}
	return w.generator.Generate(ctx, tpl, req.Fields)
}

func (w *Workspace) AnalyzeDocument(ctx context.Context, doc entity.DocumentRequest) (*entity.DocumentAnalysis, error) {
	if strings.TrimSpace(doc.Name) == "" && strings.TrimSpace(doc.Content) == "" {
		return nil, entity.ErrInvalidRequest
	}
	if _, err := entity.ParsePlanTier(doc.Plan); err != nil {
		return nil, err
	}
	return w.analyzer.Analyze(ctx, doc)
}
