// Package validation runs pre-flight checks over the campaign tree before it
// is sent to a platform. Validators never fail fast: every problem found is
// returned so a caller can show them all in one pass.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campaign-sync/internal/core/domain"
)

// IDSet is a set of local entity ids.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Context carries batch information into a validator. The zero value
// validates an entity standalone: no referential checks are made.
type Context struct {
	// Platform selects rules and defaults for ad groups and ads, which do
	// not carry a platform themselves. Campaigns use their own platform
	// when this is empty.
	Platform domain.Platform
	// ValidCampaignIDs enables the ad group parent check when non-nil.
	ValidCampaignIDs IDSet
	// ValidAdGroupIDs enables the ad and keyword parent check when non-nil.
	ValidAdGroupIDs IDSet
}

// Validator checks entities against per-platform rules.
type Validator struct {
	defaults *Defaults
	rules    map[domain.Platform]Rules
	generic  Rules
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithDefaults replaces the defaults resolver.
func WithDefaults(d *Defaults) Option {
	return func(v *Validator) { v.defaults = d }
}

// WithRules sets the rule set of a platform.
func WithRules(platform domain.Platform, r Rules) Option {
	return func(v *Validator) { v.rules[domain.NormalizePlatform(string(platform))] = r }
}

// WithClock overrides the clock used to resolve "start now" schedules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New returns a Validator with the built-in rules and defaults.
func New(opts ...Option) *Validator {
	v := &Validator{
		defaults: NewDefaults(nil),
		rules: map[domain.Platform]Rules{
			domain.PlatformReddit: RedditRules(),
			domain.PlatformGoogle: GoogleRules(),
		},
		generic: GenericRules(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Defaults returns the resolver the validator consults.
func (v *Validator) Defaults() *Defaults { return v.defaults }

func (v *Validator) rulesFor(p domain.Platform) Rules {
	if r, ok := v.rules[domain.NormalizePlatform(string(p))]; ok {
		return r
	}
	return v.generic
}

// collector accumulates errors for one entity.
type collector struct {
	entity domain.EntityType
	id     string
	errs   []domain.ValidationError
}

func (c *collector) add(field, code, msg string, value any) {
	c.errs = append(c.errs, domain.ValidationError{
		EntityType: c.entity,
		EntityID:   c.id,
		Field:      field,
		Code:       code,
		Message:    msg,
		Value:      value,
	})
}

func (c *collector) required(field string) {
	c.add(field, domain.CodeRequiredField, fmt.Sprintf("%s is required", field), nil)
}

// text checks presence (when required) and length of a string field.
func (c *collector) text(field, value string, required bool, maxLen int) {
	if strings.TrimSpace(value) == "" {
		if required {
			c.required(field)
		}
		return
	}
	if maxLen > 0 {
		if n := utf8.RuneCountInString(value); n > maxLen {
			c.add(field, domain.CodeMaxLength,
				fmt.Sprintf("%s must be at most %d characters, got %d", field, maxLen, n), value)
		}
	}
}

func (c *collector) enum(field, value string, valid []string) {
	if value == "" || len(valid) == 0 || inEnum(value, valid) {
		return
	}
	c.add(field, domain.CodeInvalidEnum,
		fmt.Sprintf("%s %q is not one of: %s", field, value, strings.Join(valid, ", ")), value)
}

// defaultable reports a missing field unless the platform fills it in.
func (v *Validator) defaultable(c *collector, p domain.Platform, field, value string) {
	if strings.TrimSpace(value) != "" {
		return
	}
	if v.defaults.HasDefault(p, c.entity, field) {
		return
	}
	c.required(field)
}

func (c *collector) budget(b *domain.Budget) {
	if b == nil {
		return
	}
	switch b.Type {
	case domain.BudgetDaily, domain.BudgetLifetime, domain.BudgetShared:
	case "":
		c.required(FieldBudgetType)
	default:
		c.add(FieldBudgetType, domain.CodeInvalidEnum,
			fmt.Sprintf("%s %q is not one of: daily, lifetime, shared", FieldBudgetType, b.Type), string(b.Type))
	}
	if b.Type != "" && b.Amount <= 0 {
		c.add(FieldBudgetAmount, domain.CodeInvalidValue,
			fmt.Sprintf("%s must be positive when a budget type is set", FieldBudgetAmount), b.Amount)
	}
}

func (c *collector) schedule(start, end domain.ScheduleTime, now time.Time) {
	s, sok := start.Resolve(now)
	if !start.IsZero() && !sok && !isFalse(start) {
		c.add(FieldStartTime, domain.CodeInvalidValue, "start time is not a valid date", nil)
	}
	e, eok := end.Resolve(now)
	if !end.IsZero() && !eok {
		c.add(FieldEndTime, domain.CodeInvalidValue, "end time is not a valid date", nil)
	}
	if sok && eok && !e.After(s) {
		c.add(FieldEndTime, domain.CodeInvalidDateRange, "end time must be after start time",
			e.Format(time.RFC3339))
	}
}

func isFalse(t domain.ScheduleTime) bool {
	b, err := t.MarshalJSON()
	return err == nil && string(b) == "false"
}

func (c *collector) parent(field, id string, valid IDSet) {
	if valid == nil {
		return
	}
	if id == "" || !valid.Has(id) {
		c.add(field, domain.CodeMissingDependency,
			fmt.Sprintf("%s %q does not reference an entity in this batch", field, id), id)
	}
}
