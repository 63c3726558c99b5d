// Package validate scores extracted field maps for plausibility. Rules are
// declarative data traversed by a shared engine; each document type gets the
// subset of rules whose predicate accepts it.
package validate

import "taxdoc/internal/domain"

// Rule is a single plausibility check.
type Rule interface {
	Key() string
	Name() string
	Type() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
	AppliesTo(t domain.DocumentType) bool
	// Check returns one message per violation; an empty slice means the
	// rule passed or did not apply to the fields at hand.
	Check(fields *domain.FieldMap, t domain.DocumentType) []string
}

// rule is the concrete table-driven Rule used by all built-in rule sets.
type rule struct {
	key      string
	name     string
	ruleType domain.ValidationRuleType
	severity domain.ValidationSeverity
	applies  func(domain.DocumentType) bool
	check    func(*domain.FieldMap, domain.DocumentType) []string
}

func (r *rule) Key() string                          { return r.key }
func (r *rule) Name() string                         { return r.name }
func (r *rule) Type() domain.ValidationRuleType      { return r.ruleType }
func (r *rule) Severity() domain.ValidationSeverity  { return r.severity }
func (r *rule) AppliesTo(t domain.DocumentType) bool { return r.applies(t) }

func (r *rule) Check(fields *domain.FieldMap, t domain.DocumentType) []string {
	return r.check(fields, t)
}

// AllBuiltinRules returns every built-in rule in its canonical order.
// Ordering fixes the order of messages in ValidationResult.
func AllBuiltinRules() []Rule {
	var rules []Rule
	rules = append(rules, RequiredRules()...)
	rules = append(rules, LogicalRules()...)
	rules = append(rules, CrossFieldRules()...)
	rules = append(rules, RangeRules()...)
	return rules
}
