// Package domain defines the core types for awareness-phase classification.
package domain

import "time"

// PhaseName identifies one of the five customer awareness stages.
type PhaseName string

// The five awareness stages, ordered from least to most aware.
const (
	PhaseUnaware       PhaseName = "unaware"
	PhaseProblemAware  PhaseName = "problemAware"
	PhaseSolutionAware PhaseName = "solutionAware"
	PhaseProductAware  PhaseName = "productAware"
	PhaseMostAware     PhaseName = "mostAware"
)

// PhaseCount is the number of phases every project has. Orders 1..5 are
// each used exactly once per project.
const PhaseCount = 5

// MaxContentItems caps the per-phase recent-content list. Items beyond
// the cap are evicted oldest-first.
const MaxContentItems = 100

// Indicator is a weighted text pattern whose presence in normalized
// content contributes evidence toward a phase.
type Indicator struct {
	ID          string  `json:"id"`
	Pattern     string  `json:"pattern"`
	Weight      float64 `json:"weight"` // 0-10, default 1
	Description string  `json:"description,omitempty"`
}

// MarketingAngle is a recommended messaging angle attached to a phase.
type MarketingAngle struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// Platform identifies where a piece of content originated.
type Platform string

// Known content platforms.
const (
	PlatformReddit    Platform = "reddit"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformAmazon    Platform = "amazon"
	PlatformOther     Platform = "other"
)

// ParsePlatform maps a raw platform string to a known Platform,
// defaulting to PlatformOther.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformReddit, PlatformTwitter, PlatformInstagram, PlatformTikTok, PlatformAmazon:
		return Platform(s)
	default:
		return PlatformOther
	}
}

// ContentItem is a classified piece of content stored inside a phase.
// Items are immutable after insertion and ordered most-recent-first.
type ContentItem struct {
	SourceID   string    `json:"source_id"`
	Text       string    `json:"text"`
	Platform   Platform  `json:"platform"`
	URL        string    `json:"url"`
	Author     string    `json:"author"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"` // 0-1
}

// Phase is one awareness stage of a project, with its indicator set,
// recommended angles, distribution share and recent content bucket.
type Phase struct {
	ID                int              `db:"id"           json:"id"`
	ProjectID         string           `db:"project_id"   json:"project_id"`
	Name              PhaseName        `db:"name"         json:"name"`
	DisplayName       string           `db:"display_name" json:"display_name"`
	Description       string           `db:"description"  json:"description"`
	Order             int              `db:"phase_order"  json:"order"` // 1-5, unique per project
	Color             string           `db:"color"        json:"color"`
	Percentage        float64          `db:"percentage"   json:"percentage"` // 0-100
	Indicators        []Indicator      `json:"indicators"`
	RecommendedAngles []MarketingAngle `json:"recommended_angles"`
	Content           []ContentItem    `json:"content"`
	CreatedAt         time.Time        `db:"created_at"   json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"   json:"updated_at"`
}
