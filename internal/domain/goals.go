package domain

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Goal is an opaque schedulable unit. The core wires goals together but
// never runs them.
type Goal struct {
	UniqueName  string `json:"unique_name"`
	DisplayName string `json:"display_name"`
}

// NewGoal creates a goal whose display name is derived from its camel-case
// unique name: "dockerBuild" is displayed as "docker build".
func NewGoal(uniqueName string) Goal {
	return Goal{UniqueName: uniqueName, DisplayName: displayName(uniqueName)}
}

func displayName(name string) string {
	var words []string
	for _, w := range camelcase.Split(name) {
		if !isWord(w) {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Goals is a named set of goals plus the names of goal sets that must
// complete before any of them start.
type Goals struct {
	Name  string   `json:"name"`
	Goals []Goal   `json:"goals"`
	After []string `json:"after,omitempty"`
}

// NewGoals builds a named goal set.
func NewGoals(name string, goals ...Goal) *Goals {
	return &Goals{Name: name, Goals: goals}
}

// Empty reports whether gs is nil or has no goals.
func (gs *Goals) Empty() bool {
	return gs == nil || len(gs.Goals) == 0
}

// With returns a copy of gs with extra goals appended.
func (gs *Goals) With(goals ...Goal) *Goals {
	c := gs.clone()
	c.Goals = append(c.Goals, goals...)
	return c
}

// DependsOn returns a copy of gs that runs after every non-empty set in
// deps. Duplicate edges are ignored.
func (gs *Goals) DependsOn(deps ...*Goals) *Goals {
	c := gs.clone()
	for _, d := range deps {
		if d.Empty() || d.Name == c.Name {
			continue
		}
		if !containsString(c.After, d.Name) {
			c.After = append(c.After, d.Name)
		}
	}
	return c
}

// Without returns a copy of gs excluding goals whose display name is listed.
func (gs *Goals) Without(displayNames []string) *Goals {
	c := gs.clone()
	c.Goals = c.Goals[:0]
	for _, g := range gs.Goals {
		if !containsString(displayNames, g.DisplayName) {
			c.Goals = append(c.Goals, g)
		}
	}
	return c
}

// DisplayNames lists the display names of every goal in the set.
func (gs *Goals) DisplayNames() []string {
	if gs == nil {
		return nil
	}
	names := make([]string, 0, len(gs.Goals))
	for _, g := range gs.Goals {
		names = append(names, g.DisplayName)
	}
	return names
}

func (gs *Goals) clone() *Goals {
	if gs == nil {
		return &Goals{}
	}
	return &Goals{
		Name:  gs.Name,
		Goals: append([]Goal(nil), gs.Goals...),
		After: append([]string(nil), gs.After...),
	}
}
