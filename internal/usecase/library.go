package usecase

import (
	"strings"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// AllCategories disables the category filter.
const AllCategories = "Tous"

type Library struct {
	repo repository.LibraryRepository
}

func NewLibrary(repo repository.LibraryRepository) *Library {
	return &Library{repo: repo}
}

// Search filters articles by a free-text query over title, content and code,
// and by category. Premium articles are hidden from tiers without full access.
func (l *Library) Search(query, category string, plan entity.PlanTier) []entity.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))
	full := entity.CapabilitiesOf(plan).FullLibrary

	out := []entity.Article{}
	for _, a := range l.repo.List() {
		if a.Premium && !full {
			continue
		}
		if q != "" && !containsAny(q, a.Title, a.Content, a.Code) {
			continue
		}
		if cat != "" && cat != strings.ToLower(AllCategories) && strings.ToLower(a.Category) != cat {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (l *Library) Get(id string, plan entity.PlanTier) (entity.Article, error) {
	a, ok := l.repo.Get(id)
	if !ok {
		return entity.Article{}, entity.ErrResourceNotFound
	}
	if a.Premium && !entity.CapabilitiesOf(plan).FullLibrary {
		return entity.Article{}, entity.ErrPlanNotAllowed
	}
	return a, nil
}

func (l *Library) Categories() []string {
	return l.repo.Categories()
}

func (l *Library) Countries() []entity.Country {
	return l.repo.Countries()
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
