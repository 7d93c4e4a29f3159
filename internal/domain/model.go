package domain

import "time"

// AnalysisOptions controls a single Analyze/Interpret call.
type AnalysisOptions struct {
	// Full adds the seed analysis, analysis-level scores, code inspection
	// reports and version-control status to the Analysis.
	Full bool `json:"full"`
}

// Fingerprint is a stable digest of some project aspect, e.g. the
// dependency set of a build file.
type Fingerprint struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Abbrev  string `json:"abbreviation,omitempty"`
	Digest  string `json:"digest"`
	Data    string `json:"data,omitempty"`
}

// Service is a backing service a project needs at runtime (database,
// broker, cache...).
type Service struct {
	Type    string            `json:"type"`
	Image   string            `json:"image,omitempty"`
	Options map[string]string `json:"options,omitempty"`
}

// Dependency is a declared library dependency.
type Dependency struct {
	Group    string `json:"group,omitempty"`
	Artifact string `json:"artifact"`
	Version  string `json:"version,omitempty"`
	Indirect bool   `json:"indirect,omitempty"`
}

// TechnologyElement is one scanner's finding about a project. Name is the
// unique key inside an Analysis; a later element with the same name replaces
// an earlier one.
type TechnologyElement struct {
	Name                           string             `json:"name"`
	Tags                           []string           `json:"tags,omitempty"`
	ReferencedEnvironmentVariables []string           `json:"referenced_environment_variables,omitempty"`
	Services                       map[string]Service `json:"services,omitempty"`
	Dependencies                   []Dependency       `json:"dependencies,omitempty"`
	Fingerprints                   []Fingerprint      `json:"fingerprints,omitempty"`
	Properties                     map[string]any     `json:"properties,omitempty"`
}

// HasTag reports whether the element carries tag.
func (e *TechnologyElement) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IntProperty reads a numeric property, accepting the float64 shape JSON
// decoding produces.
func (e *TechnologyElement) IntProperty(key string) (int, bool) {
	switch v := e.Properties[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// StringsProperty reads a string list property. YAML and JSON decoding hand
// lists back as []any, so both shapes are accepted.
func (e *TechnologyElement) StringsProperty(key string) []string {
	switch v := e.Properties[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Message is a note for the people behind a project, produced during
// analysis or interpretation.
type Message struct {
	Level      string `json:"level"`
	Text       string `json:"text"`
	Originator string `json:"originator,omitempty"`
}

const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// VersionControlStatus is the repository state recorded on full analyses.
type VersionControlStatus struct {
	Branch string `json:"branch,omitempty"`
	SHA    string `json:"sha"`
	Clean  bool   `json:"clean"`
}

// InspectionReport is the result of running a code inspection.
type InspectionReport struct {
	Inspection string   `json:"inspection"`
	Findings   []string `json:"findings,omitempty"`
	Passed     bool     `json:"passed"`
}

// PreferencesElementName is the element a preferences scanner contributes.
const PreferencesElementName = "preferences"

// DisabledGoalsProperty lists goal display names to suppress in checks.
const DisabledGoalsProperty = "disabledGoals"

// Analysis is the persistable snapshot of a project. It is built once per
// (project, options) pair and not modified after Analyze returns.
type Analysis struct {
	ID                             string                       `json:"id"`
	Project                        string                       `json:"project"`
	CreatedAt                      time.Time                    `json:"created_at"`
	Elements                       map[string]TechnologyElement `json:"elements"`
	Services                       map[string]Service           `json:"services"`
	Dependencies                   []Dependency                 `json:"dependencies"`
	ReferencedEnvironmentVariables []string                     `json:"referenced_environment_variables"`
	Fingerprints                   map[string]Fingerprint       `json:"fingerprints"`
	Messages                       []Message                    `json:"messages,omitempty"`

	// Present only on full analyses.
	SeedAnalysis   *SeedAnalysis               `json:"seed_analysis,omitempty"`
	Scores         Scores                      `json:"scores,omitempty"`
	Inspections    map[string]InspectionReport `json:"inspections,omitempty"`
	VersionControl *VersionControlStatus       `json:"version_control,omitempty"`
}

// NewAnalysis returns an empty Analysis with all collections allocated.
func NewAnalysis(id, project string) *Analysis {
	return &Analysis{
		ID:           id,
		Project:      project,
		CreatedAt:    time.Now(),
		Elements:     make(map[string]TechnologyElement),
		Services:     make(map[string]Service),
		Fingerprints: make(map[string]Fingerprint),
	}
}

// Element returns the named element, if present.
func (a *Analysis) Element(name string) (TechnologyElement, bool) {
	e, ok := a.Elements[name]
	return e, ok
}

// HasElement reports whether a scanner contributed an element named name.
func (a *Analysis) HasElement(name string) bool {
	_, ok := a.Elements[name]
	return ok
}

// DisabledGoals returns the goal display names listed by the preferences
// element, or nil.
func (a *Analysis) DisabledGoals() []string {
	e, ok := a.Elements[PreferencesElementName]
	if !ok {
		return nil
	}
	return e.StringsProperty(DisabledGoalsProperty)
}

// Merge folds one element into the analysis:
//   - elements are keyed by name, last writer wins
//   - services merge by key, later overwrites
//   - dependencies are concatenated
//   - environment variable names keep first-seen order without duplicates
//   - fingerprints are flattened by name, collisions overwrite
func (a *Analysis) Merge(e *TechnologyElement) {
	if e == nil {
		return
	}
	a.Elements[e.Name] = *e
	for k, svc := range e.Services {
		a.Services[k] = svc
	}
	a.Dependencies = append(a.Dependencies, e.Dependencies...)
	for _, v := range e.ReferencedEnvironmentVariables {
		if !containsString(a.ReferencedEnvironmentVariables, v) {
			a.ReferencedEnvironmentVariables = append(a.ReferencedEnvironmentVariables, v)
		}
	}
	for _, fp := range e.Fingerprints {
		a.Fingerprints[fp.Name] = fp
	}
}

// Snapshot returns a copy that scanners may read while the original is
// being merged into. Element values are shared; scanners must not mutate
// them.
func (a *Analysis) Snapshot() *Analysis {
	c := *a
	c.Elements = make(map[string]TechnologyElement, len(a.Elements))
	for k, v := range a.Elements {
		c.Elements[k] = v
	}
	c.Services = make(map[string]Service, len(a.Services))
	for k, v := range a.Services {
		c.Services[k] = v
	}
	c.Fingerprints = make(map[string]Fingerprint, len(a.Fingerprints))
	for k, v := range a.Fingerprints {
		c.Fingerprints[k] = v
	}
	c.Dependencies = append([]Dependency(nil), a.Dependencies...)
	c.ReferencedEnvironmentVariables = append([]string(nil), a.ReferencedEnvironmentVariables...)
	c.Messages = append([]Message(nil), a.Messages...)
	return &c
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
