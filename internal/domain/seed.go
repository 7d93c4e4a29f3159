package domain

import (
	"context"
	"fmt"
	"regexp"
)

// Parameter is a value a user supplies when turning a seed into a new
// project, e.g. the new module path.
type Parameter struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required"`
	Pattern      string `json:"pattern,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}

// Check matches v against the parameter's Pattern. An empty Pattern accepts
// anything.
func (p Parameter) Check(v string) error {
	if p.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return fmt.Errorf("parameter %s: bad pattern %q: %w", p.Name, p.Pattern, err)
	}
	if !re.MatchString(v) {
		return fmt.Errorf("%w: %s = %q does not match %s", ErrInvalidParameter, p.Name, v, p.Pattern)
	}
	return nil
}

// ParameterValues maps parameter names to user-supplied values.
type ParameterValues map[string]string

// TransformFunc edits a project in place using the supplied parameters.
type TransformFunc func(ctx context.Context, p Project, values ParameterValues) error

// Transform is a code transform proposed by a recipe contributor. ID is a
// contributor-supplied stable identifier used to deduplicate transforms
// across recipes; an empty ID is never deduplicated.
type Transform struct {
	ID          string        `json:"id,omitempty"`
	Description string        `json:"description,omitempty"`
	Apply       TransformFunc `json:"-"`
}

// TransformRecipe is one contributor's proposal for seeding.
type TransformRecipe struct {
	Parameters []Parameter `json:"parameters,omitempty"`
	Transforms []Transform `json:"transforms,omitempty"`
	Messages   []Message   `json:"messages,omitempty"`
	Warnings   []string    `json:"warnings,omitempty"`
}

// ContributedRecipe wraps a recipe with its provenance.
type ContributedRecipe struct {
	Originator  string          `json:"originator"`
	Optional    bool            `json:"optional"`
	Description string          `json:"description,omitempty"`
	Recipe      TransformRecipe `json:"recipe"`
}

// SeedAnalysis aggregates every contributor's recipe in registration order.
type SeedAnalysis struct {
	TransformRecipes []ContributedRecipe `json:"transform_recipes"`
}

// UsableAsSeed reports whether the project can act as a template: at least
// one optional contributor must have proposed a parameter.
func (s *SeedAnalysis) UsableAsSeed() bool {
	if s == nil {
		return false
	}
	for _, r := range s.TransformRecipes {
		if r.Optional && len(r.Recipe.Parameters) > 0 {
			return true
		}
	}
	return false
}

// Parameters returns all accepted parameters in recipe order.
func (s *SeedAnalysis) Parameters() []Parameter {
	if s == nil {
		return nil
	}
	var params []Parameter
	for _, r := range s.TransformRecipes {
		params = append(params, r.Recipe.Parameters...)
	}
	return params
}

// HasParameter reports whether any accepted recipe already claims name.
func (s *SeedAnalysis) HasParameter(name string) bool {
	for _, p := range s.Parameters() {
		if p.Name == name {
			return true
		}
	}
	return false
}

// HasTransform reports whether any accepted recipe already carries a
// transform with the given non-empty id.
func (s *SeedAnalysis) HasTransform(id string) bool {
	if s == nil || id == "" {
		return false
	}
	for _, r := range s.TransformRecipes {
		for _, t := range r.Recipe.Transforms {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

// ApplyTransforms runs every accepted transform in recipe order. Required
// parameters without a value (and without a default) and values that do not
// match their parameter's Pattern fail before anything is applied.
func (s *SeedAnalysis) ApplyTransforms(ctx context.Context, p Project, values ParameterValues) error {
	resolved := make(ParameterValues, len(values))
	for k, v := range values {
		resolved[k] = v
	}
	for _, param := range s.Parameters() {
		if _, ok := resolved[param.Name]; ok {
			continue
		}
		if param.DefaultValue != "" {
			resolved[param.Name] = param.DefaultValue
			continue
		}
		if param.Required {
			return fmt.Errorf("%w: %s", ErrMissingParameter, param.Name)
		}
	}
	for _, param := range s.Parameters() {
		v, ok := resolved[param.Name]
		if !ok || param.Pattern == "" {
			continue
		}
		if err := param.Check(v); err != nil {
			return err
		}
	}

	for _, r := range s.TransformRecipes {
		for _, t := range r.Recipe.Transforms {
			if t.Apply == nil {
				continue
			}
			if err := t.Apply(ctx, p, resolved); err != nil {
				return fmt.Errorf("applying transform %q from %s: %w", t.ID, r.Originator, err)
			}
		}
	}
	return nil
}
