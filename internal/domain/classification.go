package domain

import "time"

// ContentInput is an unclassified item supplied by a content repository.
// Only a text-bearing field is required; everything else is optional.
type ContentInput struct {
	ID        string    `json:"id,omitempty"`
	Text      string    `json:"text,omitempty"`
	Content   string    `json:"content,omitempty"` // legacy alias for Text
	Platform  string    `json:"platform,omitempty"`
	URL       string    `json:"url,omitempty"`
	Author    string    `json:"author,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Body returns the text to classify, preferring Text over the legacy
// Content field. Returns "" when neither is set.
func (c *ContentInput) Body() string {
	if c.Text != "" {
		return c.Text
	}
	return c.Content
}

// ProductContext is caller-supplied domain vocabulary used to add
// phase-specific scoring bonuses beyond indicator matching. A nil
// context simply disables the bonuses.
type ProductContext struct {
	Keywords      []string `json:"keywords,omitempty"`
	PainPoints    []string `json:"pain_points,omitempty"`
	SolutionTypes []string `json:"solution_types,omitempty"`
	ProductNames  []string `json:"product_names,omitempty"`
	PurchaseTerms []string `json:"purchase_terms,omitempty"`
}

// ClassificationResult is the outcome of classifying one content item.
type ClassificationResult struct {
	Item       ContentInput          `json:"item"`
	Phase      PhaseName             `json:"classified_phase"`
	Confidence float64               `json:"confidence"` // 0-1
	Scores     map[PhaseName]float64 `json:"all_scores"`
}

// TransitionType is the recommended marketing direction.
type TransitionType string

// Transition directions.
const (
	// TransitionProgression moves the dominant audience toward a later phase.
	TransitionProgression TransitionType = "progression"
	// TransitionExpansion reaches a new audience in an earlier phase.
	TransitionExpansion TransitionType = "expansion"
)

// PhaseSummary is the reduced phase shape exposed in recommendations.
type PhaseSummary struct {
	Name              PhaseName        `json:"name"`
	DisplayName       string           `json:"display_name"`
	Percentage        float64          `json:"percentage"`
	RecommendedAngles []MarketingAngle `json:"recommended_angles"`
}

// TransitionFocus describes the recommended marketing direction derived
// from the two most populous phases.
type TransitionFocus struct {
	Type            TransitionType `json:"type"`
	Description     string         `json:"description"`
	Recommendations []string       `json:"recommendations"`
}

// Recommendation is the output of the recommendation engine.
type Recommendation struct {
	DominantPhase   PhaseSummary    `json:"dominant_phase"`
	SecondaryPhase  *PhaseSummary   `json:"secondary_phase,omitempty"`
	TransitionFocus TransitionFocus `json:"transition_focus"`
}
