package entity

import (
	"fmt"
	"strings"
)

// PlanTier is the caller's subscription level.
type PlanTier int

const (
	PlanFree PlanTier = iota
	PlanPremium
)

// UnlimitedQueries marks a tier without a daily cap.
const UnlimitedQueries = -1

func ParsePlanTier(s string) (PlanTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "free":
		return PlanFree, nil
	case "premium":
		return PlanPremium, nil
	}
	return PlanFree, fmt.Errorf("%w: %q", ErrUnknownPlan, s)
}

func (p PlanTier) String() string {
	switch p {
	case PlanFree:
		return "free"
	case PlanPremium:
		return "premium"
	}
	return fmt.Sprintf("PlanTier(%d)", int(p))
}

// Capabilities lists what a tier unlocks.
type Capabilities struct {
	Plan             string `json:"plan"`
	DisplayName      string `json:"display_name"`
	PriceFCFA        int    `json:"price_fcfa"`
	DailyQueries     int    `json:"daily_queries"`
	FullLibrary      bool   `json:"full_library"`
	PremiumTemplates bool   `json:"premium_templates"`
	AdvancedAnalysis bool   `json:"advanced_analysis"`
	AudioReading     bool   `json:"audio_reading"`
	PDFExport        bool   `json:"pdf_export"`
	FullHistory      bool   `json:"full_history"`
}

// CapabilitiesOf panics on a tier outside the enum so a new tier cannot slip
// through without an explicit entry here.
func CapabilitiesOf(p PlanTier) Capabilities {
	switch p {
	case PlanFree:
		return Capabilities{
			Plan:         p.String(),
			DisplayName:  "Gratuit",
			DailyQueries: 5,
		}
	case PlanPremium:
		return Capabilities{
			Plan:             p.String(),
			DisplayName:      "Premium",
			PriceFCFA:        5000,
			DailyQueries:     UnlimitedQueries,
			FullLibrary:      true,
			PremiumTemplates: true,
			AdvancedAnalysis: true,
			AudioReading:     true,
			PDFExport:        true,
			FullHistory:      true,
		}
	}
	panic(fmt.Sprintf("unhandled plan tier %d", int(p)))
}

// CanQuery reports whether a user on tier p who already used `used` queries
// today may send another one.
func (p PlanTier) CanQuery(used int) bool {
	limit := CapabilitiesOf(p).DailyQueries
	return limit == UnlimitedQueries || used < limit
}

// QuotaStatus is a user's query allowance for the current day.
type QuotaStatus struct {
	UserID    string `json:"user_id"`
	Plan      string `json:"plan"`
	Limit     int    `json:"limit"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

func NewQuotaStatus(userID string, p PlanTier, used int) QuotaStatus {
	limit := CapabilitiesOf(p).DailyQueries
	remaining := UnlimitedQueries
	if limit != UnlimitedQueries {
		remaining = max(limit-used, 0)
	}
	return QuotaStatus{UserID: userID, Plan: p.String(), Limit: limit, Used: used, Remaining: remaining}
}
