package forms

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eventify-app/eventify/pkg/validator"
)

// yamlDocument is the on-disk shape of rule sets:
//
//	forms:
//	  newsletter:
//	    email: {required: true, email: true}
//	    name:  {maxLength: 50}
type yamlDocument struct {
	Forms map[string]map[string]yamlRule `yaml:"forms"`
}

type yamlRule struct {
	Required        bool   `yaml:"required"`
	RequiredMessage string `yaml:"requiredMessage"`
	Email           bool   `yaml:"email"`
	MinLength       int    `yaml:"minLength"`
	MaxLength       int    `yaml:"maxLength"`
	Match           string `yaml:"match"`
	MatchMessage    string `yaml:"matchMessage"`
	Custom          string `yaml:"custom"`
	CustomMessage   string `yaml:"customMessage"`
}

// LoadYAML decodes rule sets from rd and registers them, replacing forms
// with the same name. Nothing is registered if any form is invalid.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var doc yamlDocument
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrFailedToParseYAML, err)
	}

	parsed := make(map[string]validator.RuleSet, len(doc.Forms))
	for name, fields := range doc.Forms {
		if name == "" {
			return ErrEmptyName
		}
		rules := make(validator.RuleSet, len(fields))
		for field, yr := range fields {
			rule, err := r.toFieldRule(yr)
			if err != nil {
				return fmt.Errorf("form %q field %q: %w", name, field, err)
			}
			if err := checkRule(rule); err != nil {
				return fmt.Errorf("form %q field %q: %w", name, field, err)
			}
			rules[field] = rule
		}
		parsed[name] = rules
	}

	for name, rules := range parsed {
		if err := r.Register(name, rules); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads rule sets from a YAML file.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open forms file: %w", err)
	}
	defer f.Close()

	return r.LoadYAML(f)
}

func (r *Registry) toFieldRule(yr yamlRule) (validator.FieldRule, error) {
	rule := validator.FieldRule{
		Required:        yr.Required,
		RequiredMessage: yr.RequiredMessage,
		Email:           yr.Email,
		MinLength:       yr.MinLength,
		MaxLength:       yr.MaxLength,
		Match:           yr.Match,
		MatchMessage:    yr.MatchMessage,
		CustomMessage:   yr.CustomMessage,
	}
	if yr.Custom != "" {
		fn, ok := r.Predicate(yr.Custom)
		if !ok {
			return validator.FieldRule{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, yr.Custom)
		}
		rule.Custom = fn
	}
	return rule, nil
}
