package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MRamiBalles/quantum-navigator/sim/ir"
	"github.com/MRamiBalles/quantum-navigator/sim/validator"
)

var strictMode bool

var validateCmd = &cobra.Command{
	Use:   "validate <job.json>",
	Short: "Validate a job against the physics and scheduling constraints",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			logrus.Fatalf("reading job file: %v", err)
		}

		job, err := ir.ParseJob(data)
		if err != nil {
			logrus.Fatalf("parsing job: %v", err)
		}

		result := validator.Validate(job, strictMode)

		for _, w := range result.Warnings {
			logrus.WithFields(logrus.Fields{
				"code":          w.Code,
				"severity":      w.Severity,
				"operation_idx": w.OperationIndex,
			}).Warn(w.Message)
		}
		for _, e := range result.Errors {
			logrus.WithField("error", e).Error(e.Error())
		}

		fmt.Printf("valid: %t\n", result.IsValid)
		fmt.Printf("errors: %d, warnings: %d\n", len(result.Errors), len(result.Warnings))
		fmt.Printf("total_movement_um: %.3f\n", result.TotalMovementDistanceUm)
		fmt.Printf("estimated_decoherence_cost: %.6f\n", result.EstimatedDecoherenceCost)

		if !result.IsValid {
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().BoolVar(&strictMode, "strict", false, "Promote collision/blockade/velocity/heating warnings to errors")
}
