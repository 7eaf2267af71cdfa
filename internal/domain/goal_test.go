package domain_test

import (
	"encoding/json"
	"testing"

	"fitness/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
		net  float64
		want domain.Verdict
	}{
		{"lose just under", domain.GoalLoseWeight, 1499.99, domain.OnTrack},
		{"lose at ceiling", domain.GoalLoseWeight, 1500, domain.OffTrack},
		{"lose negative net", domain.GoalLoseWeight, -300, domain.OnTrack},
		{"gain at floor", domain.GoalGainMuscle, 2500, domain.OffTrack},
		{"gain just over", domain.GoalGainMuscle, 2500.01, domain.OnTrack},
		{"gain far under", domain.GoalGainMuscle, 0, domain.OffTrack},
		{"maintain lower bound", domain.GoalMaintain, 1800, domain.OnTrack},
		{"maintain upper bound", domain.GoalMaintain, 2200, domain.OnTrack},
		{"maintain below", domain.GoalMaintain, 1799.99, domain.OffTrack},
		{"maintain above", domain.GoalMaintain, 2200.01, domain.OffTrack},
		{"maintain middle", domain.GoalMaintain, 2000, domain.OnTrack},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.Evaluate(tc.goal, tc.net); got != tc.want {
				t.Errorf("Evaluate(%v, %v) = %v; want %v", tc.goal, tc.net, got, tc.want)
			}
		})
	}
}

func TestEvaluate_UnknownGoalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown goal")
		}
	}()
	domain.Evaluate(domain.Goal(0), 100)
}

func TestParseGoal(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Goal
	}{
		{"Lose Weight", domain.GoalLoseWeight},
		{"lose_weight", domain.GoalLoseWeight},
		{"GAIN MUSCLE", domain.GoalGainMuscle},
		{"gain-muscle", domain.GoalGainMuscle},
		{" Maintain ", domain.GoalMaintain},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseGoal(tc.in)
			if err != nil {
				t.Fatalf("ParseGoal(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseGoal(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}

	if _, err := domain.ParseGoal("bulk"); err == nil {
		t.Error("expected error for unknown goal")
	}
}

func TestGoalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Goal domain.Goal `json:"goal"`
	}{domain.GoalGainMuscle})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"goal":"gain_muscle"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var v struct {
		Goal domain.Goal `json:"goal"`
	}
	if err := json.Unmarshal([]byte(`{"goal":"Maintain"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Goal != domain.GoalMaintain {
		t.Fatalf("expected maintain, got %v", v.Goal)
	}
}

func TestAdvice(t *testing.T) {
	for _, g := range domain.Goals {
		on := domain.Advice(g, domain.OnTrack)
		off := domain.Advice(g, domain.OffTrack)
		if on == "" || off == "" || on == off {
			t.Errorf("%v: expected distinct advice, got %q / %q", g, on, off)
		}
	}
}
