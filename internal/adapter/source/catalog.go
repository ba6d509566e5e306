package source

import (
	"context"
	"strings"

	"yujuris-api/internal/domain/entity"
)

// CatalogEntry is a reference known ahead of time. Path is appended to each
// site of the catalog unless it is already an absolute URL.
type CatalogEntry struct {
	Title     string
	Article   string
	Code      string
	Path      string
	Excerpt   string
	Content   string
	Relevance float64
}

// Catalog serves fixed references for a set of legal websites that expose no
// search API. Every site contributes every entry, in site order.
type Catalog struct {
	name    string
	sites   []string
	entries []CatalogEntry
}

func NewCatalog(name string, sites []string, entries []CatalogEntry) *Catalog {
	if len(sites) == 0 {
		sites = []string{""}
	}
	return &Catalog{name: name, sites: sites, entries: entries}
}

func (c *Catalog) Name() string { return c.name }

// Lookup does no I/O, so it answers even when ctx is already done.
func (c *Catalog) Lookup(_ context.Context, _ entity.Query) ([]entity.Snippet, error) {
	out := make([]entity.Snippet, 0, len(c.sites)*len(c.entries))
	for _, site := range c.sites {
		for _, e := range c.entries {
			relevance := e.Relevance
			out = append(out, entity.Snippet{
				Title:     e.Title,
				Article:   entity.StrPtr(e.Article),
				Code:      e.Code,
				URL:       entity.StrPtr(joinURL(site, e.Path)),
				Excerpt:   e.Excerpt,
				Content:   e.Content,
				Relevance: &relevance,
			})
		}
	}
	return out, nil
}

func joinURL(site, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(site, "/") + "/" + strings.TrimPrefix(path, "/")
}

// NewCNDJCatalog holds the Ivorian national documentation references used
// when the CNDJ index cannot be reached.
func NewCNDJCatalog() *Catalog {
	return NewCatalog("cndj-catalog", nil, []CatalogEntry{
		{
			Title:     "Code civil ivoirien - Obligations contractuelles",
			Article:   "Article 1134",
			Code:      "Code civil CI",
			Path:      "https://biblio.cndj.ci/doc/code-civil-1134",
			Excerpt:   "Les conventions légalement formées tiennent lieu de loi à ceux qui les ont faites...",
			Content:   "Texte complet de l'article sur les obligations contractuelles",
			Relevance: 0.9,
		},
		{
			Title:     "Loi sur les sociétés commerciales en Côte d'Ivoire",
			Article:   "Article 15",
			Code:      "Loi n°2014-138",
			Path:      "https://biblio.cndj.ci/doc/societes-commerciales",
			Excerpt:   "Toute société commerciale doit être immatriculée au registre du commerce...",
			Content:   "Dispositions relatives à l'immatriculation des sociétés",
			Relevance: 0.85,
		},
	})
}

// NewOHADACatalog covers the regional-law aggregators.
func NewOHADACatalog() *Catalog {
	return NewCatalog("ohada", []string{
		"https://www.ohada.org",
		"https://www.droit-afrique.com",
		"https://www.profession-juriste.ci",
	}, []CatalogEntry{
		{
			Title:     "Acte uniforme relatif au droit des sociétés commerciales",
			Article:   "Article 5",
			Code:      "OHADA - AUDSCGIE",
			Path:      "audscgie/article-5",
			Excerpt:   "La société commerciale est créée par deux ou plusieurs personnes...",
			Content:   "Conditions de création des sociétés commerciales OHADA",
			Relevance: 0.88,
		},
	})
}

// NewComparativeCatalog covers comparative law and regional jurisprudence.
func NewComparativeCatalog() *Catalog {
	return NewCatalog("comparative", []string{
		"https://www.legifrance.gouv.fr",
		"https://www.ccja.int",
		"https://www.uemoa.int",
	}, []CatalogEntry{
		{
			Title:     "Jurisprudence CCJA - Droit commercial",
			Article:   "Arrêt n°001/2023",
			Code:      "CCJA",
			Path:      "jurisprudence/001-2023",
			Excerpt:   "La Cour considère que les dispositions de l'acte uniforme...",
			Content:   "Jurisprudence récente sur l'application du droit OHADA",
			Relevance: 0.75,
		},
	})
}
