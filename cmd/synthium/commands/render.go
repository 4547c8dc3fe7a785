package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
	phaseStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D7AF"))
	insightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	actionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF5F"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#875FFF"))
)

// dimensionNames maps component keys to readable labels in display order
var dimensionNames = []struct {
	Key  string
	Name string
}{
	{"v", "Velocity"},
	{"R", "Resistance"},
	{"r", "Resonance"},
	{"C", "Capacity"},
	{"S", "Entropy"},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func title(s string) {
	fmt.Println(titleStyle.Render(s))
}

func field(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label+":")), valueStyle.Render(value))
}

// renderVector prints one bar per dimension scaled to twenty cells
func renderVector(vec models.Vector) {
	comps := vec.Components()
	for i, dim := range dimensionNames {
		cells := int(comps[i]*20 + 0.5)
		if cells > 20 {
			cells = 20
		}
		bar := strings.Repeat("█", cells) + strings.Repeat("░", 20-cells)
		fmt.Printf("  %s %s %.2f\n",
			labelStyle.Render(fmt.Sprintf("%-11s", dim.Name)),
			barStyle.Render(bar),
			comps[i])
	}
}

func renderAnalysis(analysis models.StateAnalysis) {
	title("State Analysis")
	renderVector(analysis.Vector)
	fmt.Println()

	field("Wellbeing", fmt.Sprintf("%.3f", analysis.WellbeingScore))
	field("Phase", phaseStyle.Render(analysis.Phase))
	field("Stability", fmt.Sprintf("%.3f", analysis.Stability))

	if len(analysis.SimilarPhenomena) > 0 {
		fmt.Println()
		title("Similar phenomena")
		for _, p := range analysis.SimilarPhenomena {
			fmt.Printf("  %s %s\n",
				valueStyle.Render(p.Phenomenon),
				labelStyle.Render(fmt.Sprintf("(similarity %.3f)", p.Similarity)))
		}
	}

	if len(analysis.Insights) > 0 {
		fmt.Println()
		title("Insights")
		for _, s := range analysis.Insights {
			fmt.Println(insightStyle.Render("  • " + s))
		}
	}

	if len(analysis.Recommendations) > 0 {
		fmt.Println()
		title("Recommendations")
		for _, s := range analysis.Recommendations {
			fmt.Println(actionStyle.Render("  → " + s))
		}
	}
}

func renderPlan(plan models.TransformationPlan) {
	title("Transformation Plan")
	field("Distance", fmt.Sprintf("%.3f", plan.Distance))
	field("Difficulty", plan.EstimatedDifficulty)
	if plan.Note != "" {
		field("Note", plan.Note)
	}

	if len(plan.Steps) > 0 {
		fmt.Println()
		title("Steps")
		for i, step := range plan.Steps {
			fmt.Printf("  %d. %s %s\n", i+1,
				valueStyle.Render(dimensionLabel(step.Dimension)),
				labelStyle.Render(fmt.Sprintf("(%+.3f)", step.Change)))
			fmt.Println(actionStyle.Render("     " + step.Action))
		}
	}

	if len(plan.Waypoints) > 0 {
		fmt.Println()
		title("Waypoints")
		for _, wp := range plan.Waypoints {
			fmt.Printf("  %s focus %s\n",
				labelStyle.Render(fmt.Sprintf("%3.0f%%", wp.Progress*100)),
				valueStyle.Render(dimensionLabel(wp.Focus)))
		}
	}
}

func renderTrends(report models.TrendReport) {
	title("Trend Report")
	field("User", report.UserID)
	field("States", fmt.Sprintf("%d analyzed of %d total", report.AnalyzedStates, report.TotalStates))
	field("Wellbeing", fmt.Sprintf("%.3f (%s, %+.3f)", report.CurrentWellbeing, report.WellbeingDirection, report.WellbeingTrend))

	fmt.Println()
	title("Dimensions")
	for _, dim := range dimensionNames {
		fmt.Printf("  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-11s", dim.Name)),
			trendArrow(report.DimensionDirections[dim.Key]),
			valueStyle.Render(fmt.Sprintf("%+.3f", report.DimensionTrends[dim.Key])))
	}

	if len(report.Insights) > 0 {
		fmt.Println()
		title("Insights")
		for _, s := range report.Insights {
			fmt.Println(insightStyle.Render("  • " + s))
		}
	}
}

func dimensionLabel(key string) string {
	for _, dim := range dimensionNames {
		if dim.Key == key {
			return dim.Name
		}
	}
	return key
}

func trendArrow(direction string) string {
	switch direction {
	case "rising":
		return "↑"
	case "falling":
		return "↓"
	default:
		return "·"
	}
}
