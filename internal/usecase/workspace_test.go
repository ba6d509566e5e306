package usecase

import (
	"context"
	"testing"

	"yujuris-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTemplates []entity.Template

func (f fakeTemplates) List() []entity.Template { return f }

func (f fakeTemplates) Get(id string) (entity.Template, bool) {
	for _, t := range f {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Template{}, false
}

type notYet struct{}

func (notYet) Analyze(context.Context, entity.DocumentRequest) (*entity.DocumentAnalysis, error) {
	return nil, entity.ErrNotAvailable
}

func (notYet) Generate(context.Context, entity.Template, map[string]string) ([]byte, error) {
	return nil, entity.ErrNotAvailable
}

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, tpl entity.Template, values map[string]string) ([]byte, error) {
	return []byte(tpl.Name + ":" + values["tenant"]), nil
}

var testTemplates = fakeTemplates{
	{ID: "bail", Name: "Bail", Category: "Baux", Fields: []entity.TemplateField{
		{ID: "tenant", Required: true},
		{ID: "notes"},
	}},
	{ID: "statuts", Name: "Statuts", Category: "Sociétés", Premium: true, Fields: []entity.TemplateField{
		{ID: "company", Required: true},
	}},
}

func TestWorkspace_Templates(t *testing.T) {
	ws := NewWorkspace(testTemplates, notYet{}, notYet{})
	assert.Len(t, ws.Templates(""), 2)
	assert.Len(t, ws.Templates(AllCategories), 2)
	assert.Len(t, ws.Templates("baux"), 1)
	assert.Empty(t, ws.Templates("Inconnue"))
}

func TestWorkspace_GenerateTemplate(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace(testTemplates, notYet{}, notYet{})

	_, err := ws.GenerateTemplate(ctx, "nope", entity.TemplateRequest{})
	assert.ErrorIs(t, err, entity.ErrResourceNotFound)

	_, err = ws.GenerateTemplate(ctx, "statuts", entity.TemplateRequest{Plan: "free", Fields: map[string]string{"company": "X"}})
	assert.ErrorIs(t, err, entity.ErrPlanNotAllowed)

	_, err = ws.GenerateTemplate(ctx, "bail", entity.TemplateRequest{Plan: "gold"})
	assert.ErrorIs(t, err, entity.ErrUnknownPlan)

	_, err = ws.GenerateTemplate(ctx, "bail", entity.TemplateRequest{Fields: map[string]string{"tenant": "  "}})
	assert.ErrorIs(t, err, entity.ErrMissingFields)
	assert.Contains(t, err.Error(), "tenant")

	_, err = ws.GenerateTemplate(ctx, "statuts", entity.TemplateRequest{Plan: "premium", Fields: map[string]string{"company": "X"}})
	assert.ErrorIs(t, err, entity.ErrNotAvailable)
}

func TestWorkspace_GenerateTemplateDelegates(t *testing.T) {
	ws := NewWorkspace(testTemplates, echoGenerator{}, notYet{})
	doc, err := ws.GenerateTemplate(context.Background(), "bail", entity.TemplateRequest{Fields: map[string]string{"tenant": "Kouassi"}})
	require.NoError(t, err)
	assert.Equal(t, "Bail:Kouassi", string(doc))
}

func TestWorkspace_AnalyzeDocument(t *testing.T) {
	ws := NewWorkspace(testTemplates, notYet{}, notYet{})

	_, err := ws.AnalyzeDocument(context.Background(), entity.DocumentRequest{})
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)

	_, err = ws.AnalyzeDocument(context.Background(), entity.DocumentRequest{Name: "contrat.pdf"})
	assert.ErrorIs(t, err, entity.ErrNotAvailable)
}
