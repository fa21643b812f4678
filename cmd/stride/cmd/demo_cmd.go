package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/strideml/stride/checkpoint"
	"github.com/strideml/stride/checkpoint/resolve"
	"github.com/strideml/stride/distributed"
	"github.com/strideml/stride/metrics"
	"github.com/strideml/stride/model"
	"github.com/strideml/stride/monitoring"
	"github.com/strideml/stride/recording"
	"github.com/strideml/stride/train"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Train a small linear model with checkpointing enabled",
	Long: `Demo trains a linear regression model on a synthetic dataset with ` +
		`the full hook stack attached: periodic checkpoint saving, optional ` +
		`checkpoint restoring, metric collection, run recording, and monitoring.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	epochs, _ := cmd.Flags().GetInt("epochs")
	resume, _ := cmd.Flags().GetBool("resume")
	record, _ := cmd.Flags().GetBool("record")
	noMonitor, _ := cmd.Flags().GetBool("no-monitor")

	logger := log.New(os.Stderr, "", log.LstdFlags)

	linear := demoModel()

	trainer := train.MakeBuilder().
		WithEpochRunner(linear).
		WithLogger(logger).
		Build()
	trainer.RegisterState("model", linear)

	trainer.AcceptHook(train.NewEpochLogger(logger))

	group := distributed.NopGroup{}

	saveHook := checkpoint.MakeSaveHookBuilder().
		WithContext(trainer).
		WithGroup(group).
		WithLogger(logger).
		WithInterval(cfg.SaveInterval).
		WithDir(cfg.CheckpointDir).
		WithSuffix(cfg.CheckpointSuffix).
		Build()
	trainer.AcceptHook(saveHook)

	if resume {
		resumeEpoch, _ := cmd.Flags().GetInt("resume-epoch")

		selector := resolve.Latest()
		if resumeEpoch >= 0 {
			selector = resolve.ForEpoch(resumeEpoch)
		}

		loadHook := checkpoint.MakeLoadHookBuilder().
			WithContext(trainer).
			WithGroup(group).
			WithLogger(logger).
			WithDir(cfg.CheckpointDir).
			WithSelector(selector).
			WithResolver(resolve.FileResolver{Suffix: cfg.CheckpointSuffix}).
			Build()
		trainer.AcceptHook(loadHook)
	}

	trainer.AcceptHook(metrics.NewHook())

	var runLog *recording.RunLog

	if record {
		recorder := recording.New(cfg.RecordPath)
		defer recorder.Close()

		runLog = recording.NewRunLog(recorder)
		trainer.AcceptHook(runLog)
	}

	if !noMonitor {
		monitor := monitoring.NewMonitor()
		monitor.RegisterTrainer(trainer)

		if cfg.MonitorPort > 0 {
			monitor.WithPortNumber(cfg.MonitorPort)
		}

		monitor.StartServer()

		bar := monitor.CreateProgressBar("epochs", uint64(epochs))
		trainer.AcceptHook(monitoring.NewEpochProgressHook(bar))

		defer monitor.CompleteProgressBar(bar)
	}

	err = trainer.Fit(epochs)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "final loss after epoch %d: %f\n",
		trainer.CurrentEpoch(), linear.Loss())

	return nil
}

// demoModel builds a 2-feature linear model over a small synthetic dataset
// generated from y = 3*x1 - 2*x2 + 1.
func demoModel() *model.Linear {
	linear := model.NewLinear(2, 0.05)

	samples := 64
	xData := make([]float64, samples*2)
	yData := make([]float64, samples)

	for i := 0; i < samples; i++ {
		x1 := float64(i%8) / 8.0
		x2 := float64(i/8) / 8.0

		xData[i*2] = x1
		xData[i*2+1] = x2
		yData[i] = 3*x1 - 2*x2 + 1
	}

	linear.SetData(
		mat.NewDense(samples, 2, xData),
		mat.NewVecDense(samples, yData),
	)

	return linear
}

func init() {
	demoCmd.Flags().Int("epochs", 20, "number of epochs to train")
	demoCmd.Flags().Bool("resume", false,
		"restore a checkpoint before training")
	demoCmd.Flags().Int("resume-epoch", -1,
		"epoch of the checkpoint to restore, -1 for the latest")
	demoCmd.Flags().Bool("record", false,
		"record epochs and checkpoints into a SQLite database")
	demoCmd.Flags().Bool("no-monitor", false,
		"do not start the monitoring server")

	rootCmd.AddCommand(demoCmd)
}
