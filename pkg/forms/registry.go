package forms

import (
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/eventify-app/eventify/pkg/validator"
)

// Registry holds named rule sets and the predicates they may reference.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	forms      map[string]validator.RuleSet
	predicates map[string]validator.Predicate
	now        func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the time source used by date predicates.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry returns a registry with the built-in predicates and no forms.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		forms: make(map[string]validator.RuleSet),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.predicates = builtinPredicates(r.now)
	return r
}

// Register stores rules under name, replacing any previous rule set.
func (r *Registry) Register(name string, rules validator.RuleSet) error {
	if name == "" {
		return ErrEmptyName
	}
	for field, rule := range rules {
		if err := checkRule(rule); err != nil {
			return fmt.Errorf("%w: form %q field %q", err, name, field)
		}
	}

	r.mu.Lock()
	r.forms[name] = maps.Clone(rules)
	r.mu.Unlock()
	return nil
}

// RegisterPredicate makes fn available to rule sets loaded from YAML.
func (r *Registry) RegisterPredicate(name string, fn validator.Predicate) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w: nil predicate %q", ErrInvalidRule, name)
	}

	r.mu.Lock()
	r.predicates[name] = fn
	r.mu.Unlock()
	return nil
}

// Predicate returns the predicate registered under name.
func (r *Registry) Predicate(name string) (validator.Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.predicates[name]
	return fn, ok
}

// Get returns a copy of the rule set registered under name.
func (r *Registry) Get(name string) (validator.RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules, ok := r.forms[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(rules), true
}

// Names returns the registered form names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Validate runs the rule set registered under name against values.
func (r *Registry) Validate(name string, values validator.Values) (validator.Result, error) {
	rules, ok := r.Get(name)
	if !ok {
		return validator.Result{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return validator.Validate(values, rules), nil
}

// MustValidate is Validate for built-in form names; it panics on unknown names.
func (r *Registry) MustValidate(name string, values validator.Values) validator.Result {
	res, err := r.Validate(name, values)
	if err != nil {
		panic(err)
	}
	return res
}

func checkRule(rule validator.FieldRule) error {
	switch {
	case rule.MinLength < 0, rule.MaxLength < 0:
		return fmt.Errorf("%w: negative length bound", ErrInvalidRule)
	case rule.MinLength > 0 && rule.MaxLength > 0 && rule.MinLength > rule.MaxLength:
		return fmt.Errorf("%w: minLength %d exceeds maxLength %d", ErrInvalidRule, rule.MinLength, rule.MaxLength)
	}
	return nil
}
