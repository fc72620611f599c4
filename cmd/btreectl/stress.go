package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"bset/internal/stress"
	"bset/internal/telemetry"
)

var (
	stressWorkers int
	stressOps     int
	stressShared  bool
	stressDegree  int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Drive many trees concurrently",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := telemetry.New(telemetry.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		degree := resolveDegree(stressDegree)

		var (
			results []stress.Result
			err     error
		)
		if stressShared {
			results, err = stress.RunShared(ctx, stressWorkers, degree, stressOps)
		} else {
			results, err = stress.RunIndependent(ctx, stressWorkers, degree, stressOps)
		}
		if err != nil {
			return err
		}

		for _, r := range results {
			log.Info().
				Int("worker", r.Worker).
				Int("inserted", r.Inserted).
				Int("removed", r.Removed).
				Int("final_len", r.FinalLen).
				Msg("stress worker finished")
			fmt.Printf("worker %d: %s, %s removed, %s left\n",
				r.Worker, countNoun(r.Inserted, "insert"), countNoun(r.Removed, "key"), countNoun(r.FinalLen, "key"))
		}
		return nil
	},
}

func init() {
	stressCmd.Flags().IntVar(&stressWorkers, "trees", 8, "number of independent trees (workers)")
	stressCmd.Flags().IntVar(&stressOps, "ops", 1000, "operations per worker")
	stressCmd.Flags().IntVar(&stressDegree, "degree", 0, "minimum degree (0 uses the configured default)")
	stressCmd.Flags().BoolVar(&stressShared, "shared", false, "drive a single SynchronizedTree instead of one tree per worker")
}
