package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MRamiBalles/quantum-navigator/sim/ir"
	"github.com/MRamiBalles/quantum-navigator/sim/physics"
	"github.com/MRamiBalles/quantum-navigator/sim/simulator"
	"github.com/MRamiBalles/quantum-navigator/sim/telemetry"
)

var (
	simJobPath      string
	simBenchmark    string
	simProfilePath  string
	simCycles       int
	simSeed         int64
	simStopAfterCyc uint64
	simClientID     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the continuous-operation simulator, emitting telemetry frames as JSON lines",
	Run: func(cmd *cobra.Command, args []string) {
		if simJobPath == "" && simBenchmark == "" {
			logrus.Fatal("one of --job or --benchmark is required")
		}

		var job *ir.Job
		if simJobPath != "" {
			data, err := os.ReadFile(simJobPath)
			if err != nil {
				logrus.Fatalf("reading job file: %v", err)
			}
			job, err = ir.ParseJob(data)
			if err != nil {
				logrus.Fatalf("parsing job: %v", err)
			}
		}

		var profile *physics.DeviceProfile
		if simProfilePath != "" {
			var err error
			profile, err = physics.LoadProfile(simProfilePath)
			if err != nil {
				logrus.Fatalf("loading device profile: %v", err)
			}
		}

		bus := telemetry.NewBus()
		sim := simulator.New(bus)

		enc := json.NewEncoder(os.Stdout)
		done := make(chan struct{})
		sink := telemetry.SinkFunc(func(f telemetry.Frame) {
			if err := enc.Encode(f); err != nil {
				logrus.Warnf("encoding frame: %v", err)
			}
			if simStopAfterCyc > 0 && f.Cycle >= simStopAfterCyc {
				sim.Stop(simClientID)
			}
			if f.Status == telemetry.StatusCompleted || f.Status == telemetry.StatusStopped {
				select {
				case <-done:
				default:
					close(done)
				}
			}
		})

		handle, err := sim.Start(simulator.StartInput{
			ClientID:      simClientID,
			Job:           job,
			BenchmarkType: simulator.BenchmarkType(simBenchmark),
			Profile:       profile,
			TotalCycles:   simCycles,
			Seed:          simSeed,
		}, sink)
		if err != nil {
			logrus.Fatalf("starting simulation: %v", err)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Fprintln(os.Stderr, "received interrupt, requesting stop")
			sim.Stop(handle.ClientID)
		}()

		<-handle.Done
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simJobPath, "job", "", "Path to a job JSON file")
	simulateCmd.Flags().StringVar(&simBenchmark, "benchmark", "", "Benchmark preset name")
	simulateCmd.Flags().StringVar(&simProfilePath, "device-profile", "", "Path to a YAML device-profile override")
	simulateCmd.Flags().IntVar(&simCycles, "cycles", 100, "Total cycles to run")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "RNG seed")
	simulateCmd.Flags().Uint64Var(&simStopAfterCyc, "stop-after-cycle", 0, "Request cooperative stop once this cycle's frame is observed (0 disables)")
	simulateCmd.Flags().StringVar(&simClientID, "client-id", "cli", "Telemetry client_id for this run")
}
