package domain

import "strings"

// Tier is a subscription level. Higher tiers unlock every lower tier's templates.
type Tier int

const (
	TierFree Tier = iota
	TierPro
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierPro:
		return "pro"
	case TierPremium:
		return "premium"
	default:
		return "free"
	}
}

// ParseTier maps a stored tier name; unknown names are free.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pro":
		return TierPro
	case "premium":
		return TierPremium
	default:
		return TierFree
	}
}

// Allows reports whether a subscriber on t may use a template requiring min.
func (t Tier) Allows(min Tier) bool {
	return t >= min
}

// ResumeTemplate couples a generator key with its base markup.
type ResumeTemplate struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Markup      string `json:"-"`
	MinTier     Tier   `json:"min_tier"`
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	*t = ParseTier(string(b))
	return nil
}
