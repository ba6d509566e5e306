package store

import "yujuris-api/internal/domain/entity"

type StaticTemplates struct {
	templates []entity.Template
}

func NewStaticTemplates() *StaticTemplates {
	return &StaticTemplates{templates: legalTemplates}
}

func (s *StaticTemplates) List() []entity.Template {
	return append([]entity.Template(nil), s.templates...)
}

func (s *StaticTemplates) Get(id string) (entity.Template, bool) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Template{}, false
}

var legalTemplates = []entity.Template{
	{
		ID:          "1",
		Name:        "Contrat de Bail Commercial",
		Category:    "Baux et locations immobilières",
		Description: "Modèle complet pour la location de locaux commerciaux selon le droit OHADA",
		Fields: []entity.TemplateField{
			{ID: "landlord", Label: "Nom du bailleur", Type: entity.FieldText, Required: true},
			{ID: "tenant", Label: "Nom du locataire", Type: entity.FieldText, Required: true},
			{ID: "property", Label: "Description du bien", Type: entity.FieldText, Required: true},
			{ID: "rent", Label: "Montant du loyer (FCFA)", Type: entity.FieldNumber, Required: true},
			{ID: "duration", Label: "Durée du bail (années)", Type: entity.FieldNumber, Required: true},
			{ID: "startDate", Label: "Date de début", Type: entity.FieldDate, Required: true},
		},
	},
	{
		ID:          "2",
		Name:        "Mise en Demeure",
		Category:    "Mises en demeure et recouvrement",
		Description: "Document officiel pour exiger l'exécution d'une obligation",
		Fields: []entity.TemplateField{
			{ID: "creditor", Label: "Créancier", Type: entity.FieldText, Required: true},
			{ID: "debtor", Label: "Débiteur", Type: entity.FieldText, Required: true},
			{ID: "obligation", Label: "Obligation non respectée", Type: entity.FieldText, Required: true},
			{ID: "deadline", Label: "Délai accordé (jours)", Type: entity.FieldNumber, Required: true},
			{ID: "amount", Label: "Montant dû (FCFA)", Type: entity.FieldNumber},
		},
	},
	{
		ID:          "3",
		Name:        "Statuts de SARL",
		Category:    "Actes de société et statuts",
		Description: "Statuts type pour la création d'une SARL selon l'Acte uniforme OHADA",
		Premium:     true,
		Fields: []entity.TemplateField{
			{ID: "company", Label: "Dénomination sociale", Type: entity.FieldText, Required: true},
			{ID: "object", Label: "Objet social", Type: entity.FieldText, Required: true},
			{ID: "capital", Label: "Capital social (FCFA)", Type: entity.FieldNumber, Required: true},
			{ID: "address", Label: "Siège social", Type: entity.FieldText, Required: true},
			{ID: "duration", Label: "Durée (années)", Type: entity.FieldNumber, Required: true},
		},
	},
}
