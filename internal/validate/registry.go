package validate

// Registry holds validation rules keyed by rule key, preserving registration
// order so that validation output is deterministic.
type Registry struct {
	rules []Rule
	byKey map[string]Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Rule)}
}

// Register adds a rule. Re-registering a key replaces the rule in place.
func (r *Registry) Register(rule Rule) {
	if _, ok := r.byKey[rule.Key()]; !ok {
		r.rules = append(r.rules, rule)
	} else {
		for i, existing := range r.rules {
			if existing.Key() == rule.Key() {
				r.rules[i] = rule
				break
			}
		}
	}
	r.byKey[rule.Key()] = rule
}

// Get returns the rule for key, or nil if not registered.
func (r *Registry) Get(key string) Rule {
	return r.byKey[key]
}

// All returns the rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
