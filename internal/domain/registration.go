package domain

// Predicate decides whether a registered contributor takes part in a run.
// It is evaluated on every Analyze/Interpret/Score call and never cached.
type Predicate func(opts AnalysisOptions, sdm *SdmContext) bool

// RegistrationKind tags the two registration variants.
type RegistrationKind int

const (
	Unconditional RegistrationKind = iota
	Conditional
)

func (k RegistrationKind) String() string {
	if k == Conditional {
		return "conditional"
	}
	return "unconditional"
}

// Registration pairs a contributor with an optional run predicate. Scanners,
// interpreters, scorers and code inspections all share it, so eligibility
// dispatch is the same regardless of payload.
type Registration[W any] struct {
	Action  W
	Kind    RegistrationKind
	runWhen Predicate
}

// Always registers action so that it runs on every call.
func Always[W any](action W) Registration[W] {
	return Registration[W]{Action: action, Kind: Unconditional}
}

// When registers action so that it runs only when pred holds. A nil pred
// degrades to Always.
func When[W any](action W, pred Predicate) Registration[W] {
	if pred == nil {
		return Always(action)
	}
	return Registration[W]{Action: action, Kind: Conditional, runWhen: pred}
}

// RunWhen evaluates the registration's predicate. A Conditional
// registration built without When has no predicate and always runs.
func (r Registration[W]) RunWhen(opts AnalysisOptions, sdm *SdmContext) bool {
	if r.Kind != Conditional || r.runWhen == nil {
		return true
	}
	return r.runWhen(opts, sdm)
}

// Eligible returns the actions whose predicate holds, in registration order.
func Eligible[W any](regs []Registration[W], opts AnalysisOptions, sdm *SdmContext) []W {
	out := make([]W, 0, len(regs))
	for _, r := range regs {
		if r.RunWhen(opts, sdm) {
			out = append(out, r.Action)
		}
	}
	return out
}

// Actions returns every registered action regardless of predicate.
func Actions[W any](regs []Registration[W]) []W {
	out := make([]W, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.Action)
	}
	return out
}

// FullOnly is a predicate that holds only for full analyses.
func FullOnly(opts AnalysisOptions, _ *SdmContext) bool {
	return opts.Full
}
