package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"fitness/internal/app"
	"fitness/internal/domain"
)

var (
	statsTop   int
	goalUserID int64
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print calories in and out per user and the most logged foods",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var goalCheckCmd = &cobra.Command{
	Use:   "goal-check",
	Short: "Check a user's net calories against their goal",
	Args:  cobra.NoArgs,
	RunE:  runGoalCheck,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func runStats(cmd *cobra.Command, args []string) error {
	top := cfg.TopFoods
	if cmd.Flags().Changed("top") {
		if statsTop < 0 {
			return errors.New("--top must not be negative")
		}
		top = statsTop
	}

	svc, st, err := openServices()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QueryTimeout)
	defer cancel()

	overview, err := svc.Stats.Overview(ctx, top)
	if err != nil {
		return err
	}
	writeOverview(cmd.OutOrStdout(), overview)
	return nil
}

func runGoalCheck(cmd *cobra.Command, args []string) error {
	svc, st, err := openServices()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QueryTimeout)
	defer cancel()

	report, err := svc.Goals.Check(ctx, goalUserID)
	if err != nil {
		return err
	}
	writeGoalReport(cmd.OutOrStdout(), report)
	return nil
}

func writeOverview(w io.Writer, o *app.Overview) {
	fmt.Fprintln(w, userCaloriesTable("Calories consumed per user", o.CaloriesIn))
	fmt.Fprintln(w, userCaloriesTable("Calories burned per user", o.CaloriesOut))

	fmt.Fprintln(w, titleStyle.Render("Most logged foods"))
	if len(o.TopFoods) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no data"))
		return
	}
	t := newTable("FOOD", "TIMES LOGGED")
	for _, f := range o.TopFoods {
		t.Row(f.FoodName, strconv.Itoa(f.TimesLogged))
	}
	fmt.Fprintln(w, t.Render())
}

func userCaloriesTable(title string, rows []domain.UserCalories) string {
	if len(rows) == 0 {
		return titleStyle.Render(title) + "\n" + mutedStyle.Render("no data")
	}
	t := newTable("USER", "CALORIES")
	for _, r := range rows {
		t.Row(r.UserName, formatCalories(r.Calories))
	}
	return titleStyle.Render(title) + "\n" + t.Render()
}

func writeGoalReport(w io.Writer, r *app.GoalReport) {
	verdict := badStyle.Render("off track")
	if r.Verdict == domain.OnTrack {
		verdict = goodStyle.Render("on track")
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Goal check for %s", r.UserName)))
	t := newTable().
		Row("Goal", r.GoalLabel).
		Row("Calories in", formatCalories(r.CaloriesIn)).
		Row("Calories out", formatCalories(r.CaloriesOut)).
		Row("Net", formatCalories(r.Net)).
		Row("Verdict", verdict)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, r.Advice)
}

func newTable(headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if len(headers) > 0 {
		t.Headers(headers...)
	}
	return t
}

func formatCalories(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
