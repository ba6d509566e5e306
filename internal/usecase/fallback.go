package usecase

import (
	"fmt"
	"strings"

	"yujuris-api/internal/domain/entity"
)

// Topic is a coarse legal area used to pick a canned answer when the model
// is unavailable.
type Topic int

const (
	TopicGeneral Topic = iota
	TopicCompany
	TopicContracts
	TopicLabor
)

func (t Topic) String() string {
	switch t {
	case TopicCompany:
		return "company"
	case TopicContracts:
		return "contracts"
	case TopicLabor:
		return "labor"
	}
	return "general"
}

// Checked in order; the first topic with a matching keyword wins.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicCompany, []string{"société", "sarl", "sa ", "créer"}},
	{TopicContracts, []string{"contrat", "bail", "location"}},
	{TopicLabor, []string{"travail", "employé", "salaire"}},
}

// ClassifyTopic is a plain substring match on the lowercased question, so
// negations ("ne pas créer") still route to the topic.
func ClassifyTopic(text string) Topic {
	lower := strings.ToLower(text)
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				return tk.topic
			}
		}
	}
	return TopicGeneral
}

// FallbackAnswer returns the canned body for the question's topic.
func FallbackAnswer(q entity.Query) string {
	topic := ClassifyTopic(q.Text)
	if q.Locale == entity.LocaleEN {
		if topic == TopicGeneral {
			return fmt.Sprintf(genericEN, quoteExcerpt(q.Text))
		}
		return topicEN[topic]
	}
	if topic == TopicGeneral {
		return fmt.Sprintf(genericFR, quoteExcerpt(q.Text))
	}
	return topicFR[topic]
}

func quoteExcerpt(text string) string {
	if len([]rune(text)) > 100 {
		return truncateRunes(text, 100) + "..."
	}
	return text
}

var topicFR = map[Topic]string{
	TopicCompany: `**Création de société dans l'espace OHADA**

Selon l'Acte uniforme relatif au droit des sociétés commerciales et du GIE, voici les étapes essentielles :

**📋 Conditions préalables :**
• Capital social minimum : 10 000 000 FCFA pour une SA, 1 000 000 FCFA pour une SARL (sauf montant fixé par l'État partie)
• Un associé suffit pour une SARL comme pour une SA
• Siège social dans un État partie OHADA

**📝 Procédure de constitution :**
1. **Rédaction des statuts** conformément à l'AUDSCGIE
2. **Dépôt du capital** dans une banque agréée ou chez un notaire
3. **Immatriculation** au Registre du Commerce et du Crédit Mobilier (RCCM)
4. **Publication** dans un journal d'annonces légales

**⚖️ Obligations légales :**
• Tenue d'une comptabilité selon le SYSCOHADA
• Assemblées générales annuelles obligatoires
• Dépôt des comptes annuels au greffe

**💡 Conseil pratique :**
Faites appel à un notaire pour la rédaction des statuts afin d'assurer leur conformité avec la législation OHADA.

Souhaitez-vous des précisions sur un aspect particulier de la création de société ?`,

	TopicContracts: `**Contrats et baux dans l'espace OHADA**

Le bail à usage professionnel est régi par l'Acte uniforme relatif au droit commercial général ; les autres contrats relèvent du droit civil national.

**🏢 Pour un bail commercial :**
• **Durée** : librement fixée, renouvellement de droit après deux ans d'exploitation
• **Dépôt de garantie** : généralement 2 à 6 mois de loyer
• **Enregistrement** auprès des services fiscaux

**📋 Clauses essentielles à inclure :**
1. Identification précise des parties
2. Description détaillée du bien loué
3. Montant du loyer et modalités de révision
4. Durée du bail et conditions de renouvellement
5. Répartition des charges et travaux
6. Conditions de résiliation

**⚠️ Points d'attention :**
• Respecter les délais de préavis légaux
• Prévoir une clause d'arbitrage CCJA si souhaité
• Vérifier la conformité avec les réglementations locales

**💼 Modèles disponibles :**
Yujuris propose des modèles de contrats dans la section "Modèles Juridiques".

Avez-vous besoin d'aide pour un type de contrat spécifique ?`,

	TopicLabor: `**Droit du travail dans l'espace OHADA**

Le droit du travail relève des codes du travail nationaux ; un projet d'Acte uniforme vise à l'harmoniser.

**👥 Types de contrats de travail :**
• **CDI** : contrat à durée indéterminée (forme de droit commun)
• **CDD** : contrat à durée déterminée (durée et renouvellements encadrés)
• **Contrat d'apprentissage** : formation professionnelle

**💰 Rémunération et avantages :**
• Salaire minimum garanti (SMIG) variable selon les pays
• Paiement mensuel obligatoire
• Congés payés : en général 2,2 à 2,5 jours par mois travaillé
• Prime d'ancienneté selon la convention collective

**🛡️ Protection du salarié :**
• Préavis de licenciement selon l'ancienneté
• Indemnité de licenciement si rupture à l'initiative de l'employeur
• Protection contre le licenciement abusif

**⚖️ Résolution des conflits :**
• Tentative de conciliation obligatoire
• Saisine du tribunal du travail

**📊 Obligations de l'employeur :**
• Déclaration à la caisse de sécurité sociale (CNPS)
• Tenue du registre de l'employeur
• Respect des règles d'hygiène et sécurité

Quelle question spécifique avez-vous sur le droit du travail ?`,
}

var topicEN = map[Topic]string{
	TopicCompany: `**Company formation in the OHADA zone**

Under the Uniform Act on commercial companies and economic interest groups, the key steps are:

**📋 Prerequisites:**
• Minimum share capital: 10,000,000 FCFA for an SA, 1,000,000 FCFA for a SARL (unless set otherwise by the member state)
• A single partner is enough for a SARL or an SA
• Registered office in an OHADA member state

**📝 Incorporation steps:**
1. **Draft the articles of association** in line with the AUDSCGIE
2. **Deposit the capital** with an approved bank or a notary
3. **Register** with the Trade and Personal Property Credit Register (RCCM)
4. **Publish** a notice in a legal gazette

**💡 Practical advice:**
Have a notary draft the articles to ensure compliance with OHADA law.`,

	TopicContracts: `**Contracts and leases in the OHADA zone**

Professional leases are governed by the Uniform Act on general commercial law; other contracts fall under national civil law.

**📋 Essential clauses:**
1. Precise identification of the parties
2. Detailed description of the leased property
3. Rent amount and revision terms
4. Lease term and renewal conditions
5. Allocation of charges and works
6. Termination conditions

**⚠️ Watch out for:**
• Statutory notice periods
• An optional CCJA arbitration clause
• Local regulations`,

	TopicLabor: `**Labour law in the OHADA zone**

Employment relationships are governed by national labour codes; a draft Uniform Act aims to harmonise them.

**👥 Employment contracts:**
• **Permanent contract** (default form)
• **Fixed-term contract** (duration and renewals are regulated)
• **Apprenticeship contract**

**🛡️ Employee protection:**
• Notice period based on seniority
• Severance pay when the employer terminates
• Protection against unfair dismissal

**📊 Employer duties:**
• Registration with the social security fund
• Keeping the employer register
• Health and safety compliance`,
}

const genericFR = `**Analyse juridique OHADA**

Concernant votre question "%s", voici les éléments juridiques pertinents basés sur la législation OHADA :

**🏛️ Cadre légal applicable :**
Les actes uniformes OHADA établissent un cadre juridique harmonisé pour les 17 États membres. Plusieurs textes peuvent s'appliquer selon le contexte spécifique.

**📚 Principes fondamentaux :**
• **Sécurité juridique** : Les actes uniformes prévalent sur les législations nationales
• **Harmonisation** : Règles identiques dans tous les États parties
• **Modernisation** : Adaptation aux réalités économiques africaines

**⚖️ Recommandations pratiques :**
1. **Vérification de conformité** avec les textes OHADA en vigueur
2. **Documentation appropriée** de tous les actes juridiques
3. **Respect des procédures** établies par les actes uniformes
4. **Consultation juridique** pour les cas complexes

Pour une analyse plus approfondie de votre situation spécifique, je recommande de fournir plus de détails sur le contexte juridique et le pays concerné.`

const genericEN = `**Legal Analysis - OHADA Law**

Regarding your question "%s", here are the relevant legal elements based on OHADA legislation:

**🏛️ Applicable Legal Framework:**
OHADA acts establish a harmonized legal framework for the 17 member states. Several texts may apply depending on the specific context.

**📚 Fundamental Principles:**
• **Legal Security**: Uniform acts prevail over national legislation
• **Harmonization**: Identical rules across all member states
• **Modernization**: Adaptation to African economic realities

**⚖️ Practical Recommendations:**
1. **Compliance verification** with current OHADA texts
2. **Appropriate documentation** of all legal acts
3. **Respect for procedures** established by uniform acts
4. **Legal consultation** for complex cases

For a more detailed analysis of your specific situation, I recommend providing more details about the legal context and the country concerned.`
