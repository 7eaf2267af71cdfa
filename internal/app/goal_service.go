package app

import (
	"context"

	"fitness/internal/domain"
)

// GoalService checks a user's calorie balance against their declared goal.
type GoalService struct {
	users domain.UserRepository
	stats *StatsService
}

// NewGoalService creates a GoalService.
func NewGoalService(users domain.UserRepository, stats *StatsService) *GoalService {
	return &GoalService{users: users, stats: stats}
}

// GoalReport is the result of a goal check.
type GoalReport struct {
	UserID      int64          `json:"userId"`
	UserName    string         `json:"userName"`
	Goal        domain.Goal    `json:"goal"`
	GoalLabel   string         `json:"goalLabel"`
	CaloriesIn  float64        `json:"caloriesIn"`
	CaloriesOut float64        `json:"caloriesOut"`
	Net         float64        `json:"net"`
	Verdict     domain.Verdict `json:"verdict"`
	Advice      string         `json:"advice"`
}

// Check loads the user, totals their calories and evaluates their goal.
func (s *GoalService) Check(ctx context.Context, userID int64) (*GoalReport, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, dataErr("get user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totals, err := s.stats.UserTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	net := totals.Net()
	verdict := domain.Evaluate(user.Goal, net)
	return &GoalReport{
		UserID:      user.ID,
		UserName:    user.Name,
		Goal:        user.Goal,
		GoalLabel:   user.Goal.Label(),
		CaloriesIn:  totals.In,
		CaloriesOut: totals.Out,
		Net:         net,
		Verdict:     verdict,
		Advice:      domain.Advice(user.Goal, verdict),
	}, nil
}
