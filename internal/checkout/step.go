package checkout

import "fmt"

// Step is a stage of the checkout wizard
type Step int

const (
	StepLocation Step = iota
	StepPayment
	StepSummary
)

func (s Step) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepPayment:
		return "payment"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// MarshalText renders the step by name in JSON payloads
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a step name
func (s *Step) UnmarshalText(text []byte) error {
	for _, step := range []Step{StepLocation, StepPayment, StepSummary} {
		if step.String() == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown checkout step %q", text)
}
