// Package goalgraph turns an Interpretation into a phase-ordered goal DAG
// for an external scheduler. Nothing here executes a goal.
package goalgraph

import (
	"github.com/abdidvp/pushkraft/internal/domain"
)

// Phase names a delivery stage.
type Phase string

const (
	PhaseControl        Phase = "control"
	PhaseChecks         Phase = "checks"
	PhaseBuild          Phase = "build"
	PhaseTest           Phase = "test"
	PhaseContainerBuild Phase = "container-build"
	PhaseRelease        Phase = "release"
	PhaseDeploy         Phase = "deploy"

	PhaseStartup   Phase = "startup"
	PhaseMessaging Phase = "messaging"
)

// Goal unique names the builder synthesizes.
const (
	AutofixGoal        = "autofix"
	CodeInspectionGoal = "codeInspection"
	MessageGoal        = "message"
)

// PhaseFunc derives one phase's goal set from an Interpretation, or nil when
// the phase is empty.
type PhaseFunc func(interp *domain.Interpretation) *domain.Goals

// deliveryPhases are the phases after control, in precedence order.
var deliveryPhases = []struct {
	phase Phase
	fn    PhaseFunc
}{
	{PhaseChecks, CheckGoals},
	{PhaseBuild, slotGoals(PhaseBuild, domain.SlotBuild)},
	{PhaseTest, slotGoals(PhaseTest, domain.SlotTest)},
	{PhaseContainerBuild, slotGoals(PhaseContainerBuild, domain.SlotContainerBuild)},
	{PhaseRelease, slotGoals(PhaseRelease, domain.SlotRelease)},
	{PhaseDeploy, slotGoals(PhaseDeploy, domain.SlotDeploy)},
}

// PlannedPhase is one non-empty phase with its wired goal set.
type PlannedPhase struct {
	Phase Phase         `json:"phase"`
	Goals *domain.Goals `json:"goals"`
}

// DeliveryPlan is the output handed to a goal-execution runtime. Phases are
// in precedence order; Siblings carry no edges into or out of Phases.
type DeliveryPlan struct {
	Phases   []PlannedPhase `json:"phases"`
	Siblings []PlannedPhase `json:"siblings,omitempty"`
}

// Goals returns the planned goal set for phase p, or nil.
func (d *DeliveryPlan) Goals(p Phase) *domain.Goals {
	for _, pp := range d.Phases {
		if pp.Phase == p {
			return pp.Goals
		}
	}
	for _, pp := range d.Siblings {
		if pp.Phase == p {
			return pp.Goals
		}
	}
	return nil
}

// Empty reports whether the plan schedules nothing at all.
func (d *DeliveryPlan) Empty() bool {
	return len(d.Phases) == 0 && len(d.Siblings) == 0
}

// Build assembles the delivery plan. Every non-empty delivery phase runs
// after the control goals and after the nearest non-empty phase before it,
// so empty phases never break the chain.
func Build(interp *domain.Interpretation) *DeliveryPlan {
	plan := &DeliveryPlan{}

	control := ControlGoals(interp)
	if !control.Empty() {
		plan.Phases = append(plan.Phases, PlannedPhase{Phase: PhaseControl, Goals: control})
	}

	var previous *domain.Goals
	for _, dp := range deliveryPhases {
		gs := dp.fn(interp)
		if gs.Empty() {
			continue
		}
		gs = gs.DependsOn(control, previous)
		plan.Phases = append(plan.Phases, PlannedPhase{Phase: dp.phase, Goals: gs})
		previous = gs
	}

	if startup := StartupGoals(interp); !startup.Empty() {
		plan.Siblings = append(plan.Siblings, PlannedPhase{Phase: PhaseStartup, Goals: startup})
	}
	if messaging := MessagingGoals(interp); !messaging.Empty() {
		plan.Siblings = append(plan.Siblings, PlannedPhase{Phase: PhaseMessaging, Goals: messaging})
	}

	return plan
}

// ControlGoals merges queue, cancel and delivery-started goals.
func ControlGoals(interp *domain.Interpretation) *domain.Goals {
	control := domain.NewGoals(string(PhaseControl))
	for _, s := range []domain.Slot{domain.SlotQueue, domain.SlotCancel, domain.SlotDeliveryStarted} {
		if gs := interp.Goals(s); gs != nil {
			control = control.With(gs.Goals...)
		}
	}
	if control.Empty() {
		return nil
	}
	return control
}

// CheckGoals combines an autofix goal (when autofixes exist), a code
// inspection goal (when inspections exist) and any explicit check goals.
// Goals whose display name the analysis preferences disable are dropped
// after assembly.
func CheckGoals(interp *domain.Interpretation) *domain.Goals {
	checks := domain.NewGoals(string(PhaseChecks))
	if len(interp.Autofixes) > 0 {
		checks = checks.With(domain.NewGoal(AutofixGoal))
	}
	if len(interp.Inspections) > 0 {
		checks = checks.With(domain.NewGoal(CodeInspectionGoal))
	}
	if gs := interp.CheckGoals; gs != nil {
		checks = checks.With(gs.Goals...)
		checks.After = append(checks.After, gs.After...)
	}

	if a := interp.Analysis(); a != nil {
		if disabled := a.DisabledGoals(); len(disabled) > 0 {
			checks = checks.Without(disabled)
		}
	}

	if checks.Empty() {
		return nil
	}
	return checks
}

// StartupGoals returns the startup slot as its own sibling branch.
func StartupGoals(interp *domain.Interpretation) *domain.Goals {
	return renamed(interp.StartupGoals, PhaseStartup)
}

// MessagingGoals returns a messaging goal set only when the interpretation
// carries messages.
func MessagingGoals(interp *domain.Interpretation) *domain.Goals {
	if len(interp.Messages) == 0 {
		return nil
	}
	return domain.NewGoals(string(PhaseMessaging), domain.NewGoal(MessageGoal))
}

func slotGoals(p Phase, s domain.Slot) PhaseFunc {
	return func(interp *domain.Interpretation) *domain.Goals {
		return renamed(interp.Goals(s), p)
	}
}

// renamed moves a slot's goals under the phase name, keeping any edges
// the interpreter declared.
func renamed(gs *domain.Goals, p Phase) *domain.Goals {
	if gs.Empty() {
		return nil
	}
	out := domain.NewGoals(string(p)).With(gs.Goals...)
	out.After = append(out.After, gs.After...)
	return out
}
