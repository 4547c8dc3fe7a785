package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

var (
	transformFrom   string
	transformTarget string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Plan a transformation between two states",
	Long: `Plan a staged path from a current state to a target state. The current
state is either a known state name (flow, burnout, peace, ...) or a free
description that gets projected onto the dimensions. The target is a
known state or catalog term.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if transformFrom == "" {
			return fmt.Errorf("--from is required")
		}
		if transformTarget == "" {
			return fmt.Errorf("--target is required")
		}

		eng := newEngine()
		current, err := resolveState(cmd.Context(), eng, transformFrom)
		if err != nil {
			return err
		}

		plan, err := eng.Plan(current, transformTarget)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(plan)
		}

		title(fmt.Sprintf("From %q to %q", transformFrom, transformTarget))
		fmt.Println()
		renderPlan(plan)
		return nil
	},
}

// resolveState treats the value as a known state name first and falls
// back to projecting it as a description
func resolveState(ctx context.Context, eng *engine.Service, value string) (models.Vector, error) {
	if vec, err := eng.ResolveTarget(value); err == nil {
		return vec, nil
	}
	return eng.Vectorize(ctx, value)
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVar(&transformFrom, "from", "", "current state name or description")
	transformCmd.Flags().StringVar(&transformTarget, "target", "", "target state name")
}
