package store

import (
	"time"

	"yujuris-api/internal/domain/entity"
)

// StaticLibrary serves the bundled OHADA library. Contents are fixed at build
// time and shared read-only between requests.
type StaticLibrary struct {
	articles   []entity.Article
	categories []string
	countries  []entity.Country
}

func NewStaticLibrary() *StaticLibrary {
	return &StaticLibrary{
		articles:   libraryArticles,
		categories: legalCategories,
		countries:  ohadaCountries,
	}
}

func (l *StaticLibrary) List() []entity.Article {
	return append([]entity.Article(nil), l.articles...)
}

func (l *StaticLibrary) Get(id string) (entity.Article, bool) {
	for _, a := range l.articles {
		if a.ID == id {
			return a, true
		}
	}
	return entity.Article{}, false
}

func (l *StaticLibrary) Categories() []string {
	return append([]string(nil), l.categories...)
}

func (l *StaticLibrary) Countries() []entity.Country {
	return append([]entity.Country(nil), l.countries...)
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

var libraryArticles = []entity.Article{
	{
		ID:           "1",
		Title:        "Constitution et fonctionnement des sociétés commerciales",
		Code:         "Acte uniforme relatif au droit des sociétés commerciales",
		Article:      "Article 15",
		Content:      "Les sociétés commerciales jouissent de la personnalité morale à compter de leur immatriculation au registre du commerce et du crédit mobilier...",
		Category:     "Droit des sociétés commerciales",
		Jurisdiction: "OHADA",
		URL:          "https://www.ohada.org/audscgie/article-15",
		LastUpdated:  day("2024-01-15"),
	},
	{
		ID:           "2",
		Title:        "Obligations du commerçant",
		Code:         "Acte uniforme relatif au droit commercial général",
		Article:      "Article 23",
		Content:      "Tout commerçant doit tenir une comptabilité selon les normes comptables en vigueur dans l'État partie...",
		Category:     "Droit commercial général",
		Jurisdiction: "OHADA",
		URL:          "https://www.ohada.org/audcg/article-23",
		LastUpdated:  day("2024-01-10"),
	},
	{
		ID:           "3",
		Title:        "Procédures collectives d'apurement du passif",
		Code:         "Acte uniforme portant organisation des procédures collectives",
		Article:      "Article 1",
		Content:      "Lorsqu'un débiteur éprouve une difficulté à faire face à son passif exigible avec son actif disponible...",
		Category:     "Droit commercial général",
		Jurisdiction: "OHADA",
		URL:          "https://www.ohada.org/aupcap/article-1",
		Premium:      true,
		LastUpdated:  day("2024-01-08"),
	},
	{
		ID:           "4",
		Title:        "Force obligatoire des conventions",
		Code:         "Code civil CI",
		Article:      "Article 1134",
		Content:      "Les conventions légalement formées tiennent lieu de loi à ceux qui les ont faites. Elles ne peuvent être révoquées que de leur consentement mutuel...",
		Category:     "Droit civil et procédures civiles",
		Jurisdiction: "CI",
		URL:          "https://biblio.cndj.ci/doc/code-civil-1134",
		LastUpdated:  day("2024-01-05"),
	},
}

var legalCategories = []string{
	"Droit commercial général",
	"Droit des sociétés commerciales",
	"Droit du travail et sécurité sociale",
	"Droit civil et procédures civiles",
	"Droit pénal et procédures pénales",
	"Droit administratif et fiscal",
	"Droit bancaire et financier",
	"Droit de la propriété intellectuelle",
	"Droit de l'arbitrage",
	"Droit des transports",
}

var ohadaCountries = []entity.Country{
	{Code: "BJ", Name: "Bénin"},
	{Code: "BF", Name: "Burkina Faso"},
	{Code: "CM", Name: "Cameroun"},
	{Code: "CF", Name: "Centrafrique"},
	{Code: "KM", Name: "Comores"},
	{Code: "CG", Name: "Congo"},
	{Code: "CD", Name: "RD Congo"},
	{Code: "CI", Name: "Côte d'Ivoire"},
	{Code: "GA", Name: "Gabon"},
	{Code: "GN", Name: "Guinée"},
	{Code: "GW", Name: "Guinée-Bissau"},
	{Code: "GQ", Name: "Guinée Équatoriale"},
	{Code: "ML", Name: "Mali"},
	{Code: "NE", Name: "Niger"},
	{Code: "SN", Name: "Sénégal"},
	{Code: "TD", Name: "Tchad"},
	{Code: "TG", Name: "Togo"},
}
