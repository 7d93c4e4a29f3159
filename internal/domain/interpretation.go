package domain

import (
	"context"
	"fmt"
)

// Slot identifies one of the Interpretation's goal slots.
type Slot int

const (
	SlotStartup Slot = iota
	SlotCancel
	SlotQueue
	SlotDeliveryStarted
	SlotCheck
	SlotBuild
	SlotTest
	SlotContainerBuild
	SlotRelease
	SlotDeploy
)

var slotNames = map[Slot]string{
	SlotStartup:         "startup",
	SlotCancel:          "cancel",
	SlotQueue:           "queue",
	SlotDeliveryStarted: "delivery-started",
	SlotCheck:           "check",
	SlotBuild:           "build",
	SlotTest:            "test",
	SlotContainerBuild:  "container-build",
	SlotRelease:         "release",
	SlotDeploy:          "deploy",
}

func (s Slot) String() string {
	if n, ok := slotNames[s]; ok {
		return n
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Autofix is a code transform to run and commit on a push.
type Autofix struct {
	Name      string        `json:"name"`
	Transform TransformFunc `json:"-"`
}

// Push is the change an Interpretation is being built for.
type Push struct {
	Branch       string   `json:"branch,omitempty"`
	SHA          string   `json:"sha,omitempty"`
	ChangedFiles []string `json:"changed_files,omitempty"`
}

// PushTest decides whether a push is a material change.
type PushTest struct {
	Name string
	Test func(ctx context.Context, p Push) (bool, error)
}

// Reason records why an Interpretation looks the way it does.
type Reason struct {
	Analysis              *Analysis `json:"analysis"`
	AvailableInterpreters []string  `json:"available_interpreters"`
	ChosenInterpreters    []string  `json:"chosen_interpreters"`
}

// Interpretation is the transient decision record for one push. It is owned
// by the interpretation engine while interpreters run and is read-only
// afterwards, apart from Scores.
type Interpretation struct {
	ID     string `json:"id"`
	Reason Reason `json:"reason"`

	StartupGoals         *Goals `json:"startup_goals,omitempty"`
	CancelGoals          *Goals `json:"cancel_goals,omitempty"`
	QueueGoals           *Goals `json:"queue_goals,omitempty"`
	DeliveryStartedGoals *Goals `json:"delivery_started_goals,omitempty"`
	CheckGoals           *Goals `json:"check_goals,omitempty"`
	BuildGoals           *Goals `json:"build_goals,omitempty"`
	TestGoals            *Goals `json:"test_goals,omitempty"`
	ContainerBuildGoals  *Goals `json:"container_build_goals,omitempty"`
	ReleaseGoals         *Goals `json:"release_goals,omitempty"`
	DeployGoals          *Goals `json:"deploy_goals,omitempty"`

	Autofixes               []Autofix        `json:"autofixes,omitempty"`
	Inspections             []CodeInspection `json:"-"`
	MaterialChangePushTests []PushTest       `json:"-"`
	Scores                  Scores           `json:"scores,omitempty"`
	Messages                []Message        `json:"messages,omitempty"`
}

// NewInterpretation starts an Interpretation with every slot empty.
func NewInterpretation(id string, analysis *Analysis, available []string) *Interpretation {
	return &Interpretation{
		ID: id,
		Reason: Reason{
			Analysis:              analysis,
			AvailableInterpreters: available,
			ChosenInterpreters:    []string{},
		},
		Scores: make(Scores),
	}
}

// Analysis is shorthand for Reason.Analysis.
func (i *Interpretation) Analysis() *Analysis {
	return i.Reason.Analysis
}

func (i *Interpretation) slot(s Slot) **Goals {
	switch s {
	case SlotStartup:
		return &i.StartupGoals
	case SlotCancel:
		return &i.CancelGoals
	case SlotQueue:
		return &i.QueueGoals
	case SlotDeliveryStarted:
		return &i.DeliveryStartedGoals
	case SlotCheck:
		return &i.CheckGoals
	case SlotBuild:
		return &i.BuildGoals
	case SlotTest:
		return &i.TestGoals
	case SlotContainerBuild:
		return &i.ContainerBuildGoals
	case SlotRelease:
		return &i.ReleaseGoals
	case SlotDeploy:
		return &i.DeployGoals
	default:
		panic(fmt.Sprintf("unknown goal slot %d", int(s)))
	}
}

// Goals returns the goal set in slot s, or nil.
func (i *Interpretation) Goals(s Slot) *Goals {
	return *i.slot(s)
}

// Set unconditionally replaces the goal set in slot s.
func (i *Interpretation) Set(s Slot, gs *Goals) {
	*i.slot(s) = gs
}

// Claim stores gs in slot s only if the slot is empty and reports whether it
// did. Interpreters use it so the first claim on a slot wins; the engine
// itself never enforces this.
func (i *Interpretation) Claim(s Slot, gs *Goals) bool {
	ref := i.slot(s)
	if *ref != nil {
		return false
	}
	*ref = gs
	return true
}

// AddMessage records a message from originator.
func (i *Interpretation) AddMessage(level, originator, text string) {
	i.Messages = append(i.Messages, Message{Level: level, Text: text, Originator: originator})
}

// IsMaterialChange runs the material-change push tests. With no tests every
// push is material; otherwise any passing test makes it material.
func (i *Interpretation) IsMaterialChange(ctx context.Context, p Push) (bool, error) {
	if len(i.MaterialChangePushTests) == 0 {
		return true, nil
	}
	for _, t := range i.MaterialChangePushTests {
		ok, err := t.Test(ctx, p)
		if err != nil {
			return false, fmt.Errorf("push test %q: %w", t.Name, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
