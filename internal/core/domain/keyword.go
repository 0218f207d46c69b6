package domain

import "strings"

// MatchType is the keyword match type.
type MatchType string

const (
	MatchBroad  MatchType = "broad"
	MatchPhrase MatchType = "phrase"
	MatchExact  MatchType = "exact"
)

// Keyword belongs to exactly one ad group.
type Keyword struct {
	ID                string
	AdGroupID         string
	Text              string
	MatchType         MatchType
	Status            string
	PlatformKeywordID string
}

// HasPlatformID reports whether the platform already knows this keyword.
func (k *Keyword) HasPlatformID() bool { return k.PlatformKeywordID != "" }

// KeywordKey identifies a keyword on a platform. Text alone is not unique:
// the same text may exist with several match types in one ad group.
type KeywordKey struct {
	AdGroupID string
	Text      string
	MatchType MatchType
}

// Key returns the identity of k within its ad group.
func (k Keyword) Key() KeywordKey {
	return KeywordKey{
		AdGroupID: k.AdGroupID,
		Text:      strings.ToLower(strings.TrimSpace(k.Text)),
		MatchType: MatchType(strings.ToLower(string(k.MatchType))),
	}
}
