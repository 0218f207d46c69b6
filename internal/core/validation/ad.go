package validation

import (
	"fmt"
	"net/url"
	"strings"

	"campaign-sync/internal/core/domain"
)

// ValidateAd checks an ad against the rules of vctx.Platform.
func (v *Validator) ValidateAd(a domain.Ad, vctx Context) []domain.ValidationError {
	r := v.rulesFor(vctx.Platform)
	col := &collector{entity: domain.EntityAd, id: a.ID}

	col.parent(FieldAdGroupID, a.AdGroupID, vctx.ValidAdGroupIDs)
	col.text(FieldHeadline, a.Headline, true, r.HeadlineMaxLength)
	col.text(FieldDescription, a.Description, false, r.DescriptionMaxLength)
	col.text(FieldDisplayURL, a.DisplayURL, false, r.DisplayURLMaxLength)
	col.enum(FieldStatus, a.Status, r.Statuses)

	if strings.TrimSpace(a.FinalURL) == "" {
		col.required(FieldFinalURL)
	} else if !isHTTPURL(a.FinalURL) {
		col.add(FieldFinalURL, domain.CodeInvalidValue,
			fmt.Sprintf("%s must be an absolute http(s) URL", FieldFinalURL), a.FinalURL)
	}

	if r.RequireCallToAction {
		v.defaultable(col, vctx.Platform, FieldCallToAction, a.CallToAction)
	}
	col.enum(FieldCallToAction, a.CallToAction, r.CallToActions)

	return col.errs
}

// ValidateKeyword checks a keyword against the rules of vctx.Platform.
func (v *Validator) ValidateKeyword(k domain.Keyword, vctx Context) []domain.ValidationError {
	r := v.rulesFor(vctx.Platform)
	col := &collector{entity: domain.EntityKeyword, id: k.ID}

	col.parent(FieldAdGroupID, k.AdGroupID, vctx.ValidAdGroupIDs)
	col.text(FieldKeywordText, k.Text, true, r.KeywordMaxLength)
	switch domain.MatchType(strings.ToLower(string(k.MatchType))) {
	case domain.MatchBroad, domain.MatchPhrase, domain.MatchExact:
	case "":
		col.required(FieldMatchType)
	default:
		col.add(FieldMatchType, domain.CodeInvalidEnum,
			fmt.Sprintf("%s %q is not one of: broad, phrase, exact", FieldMatchType, k.MatchType), string(k.MatchType))
	}
	return col.errs
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
