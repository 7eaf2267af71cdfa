package domain

import (
	"fmt"
	"strings"
)

// Goal is the fitness goal a user has declared. Exactly one goal applies to a
// user at a time.
type Goal int

const (
	GoalLoseWeight Goal = iota + 1
	GoalGainMuscle
	GoalMaintain
)

// Goals lists every valid goal in display order.
var Goals = []Goal{GoalLoseWeight, GoalGainMuscle, GoalMaintain}

// Net-calorie thresholds for each goal policy.
const (
	loseWeightCeiling  = 1500.0
	gainMuscleFloor    = 2500.0
	maintainLowerBound = 1800.0
	maintainUpperBound = 2200.0
)

// Label returns the human readable goal name.
func (g Goal) Label() string {
	switch g {
	case GoalLoseWeight:
		return "Lose Weight"
	case GoalGainMuscle:
		return "Gain Muscle"
	case GoalMaintain:
		return "Maintain"
	}
	return fmt.Sprintf("Goal(%d)", int(g))
}

// String returns the stored form of the goal.
func (g Goal) String() string {
	switch g {
	case GoalLoseWeight:
		return "lose_weight"
	case GoalGainMuscle:
		return "gain_muscle"
	case GoalMaintain:
		return "maintain"
	}
	return fmt.Sprintf("Goal(%d)", int(g))
}

// Valid reports whether g is one of the known goals.
func (g Goal) Valid() bool {
	return g >= GoalLoseWeight && g <= GoalMaintain
}

// ParseGoal accepts either the stored form ("lose_weight") or the label
// ("Lose Weight"), ignoring case.
func ParseGoal(s string) (Goal, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for _, g := range Goals {
		if key == g.String() {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown goal %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (g Goal) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("unknown goal %d", int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Goal) UnmarshalText(b []byte) error {
	parsed, err := ParseGoal(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Verdict is the outcome of checking a net-calorie value against a goal.
type Verdict string

const (
	OnTrack  Verdict = "on_track"
	OffTrack Verdict = "off_track"
)

// Evaluate classifies net calories against the policy of goal. The goal must
// be valid; anything else is a programming error.
func Evaluate(goal Goal, net float64) Verdict {
	var ok bool
	switch goal {
	case GoalLoseWeight:
		ok = net < loseWeightCeiling
	case GoalGainMuscle:
		ok = net > gainMuscleFloor
	case GoalMaintain:
		ok = net >= maintainLowerBound && net <= maintainUpperBound
	default:
		panic(fmt.Sprintf("domain: evaluate called with %v", goal))
	}
	if ok {
		return OnTrack
	}
	return OffTrack
}

// Advice returns the message shown alongside a verdict.
func Advice(goal Goal, v Verdict) string {
	onTrack := v == OnTrack
	switch goal {
	case GoalLoseWeight:
		if onTrack {
			return "On track for weight loss!"
		}
		return "Too many net calories for weight loss."
	case GoalGainMuscle:
		if onTrack {
			return "On track for muscle gain!"
		}
		return "Increase calorie intake for gaining muscle."
	case GoalMaintain:
		if onTrack {
			return "Maintaining well!"
		}
		return "Your intake isn't aligned with maintenance."
	}
	return ""
}
