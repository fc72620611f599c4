package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bset/internal/btree"
	"bset/internal/fuzzcorp"
	"bset/internal/telemetry"
)

var (
	fuzzCorpus  []string
	fuzzDegree  int
	fuzzLogFile string
)

var fuzzCmd = &cobra.Command{
	Use:   "fuzz",
	Short: "Replay raw byte corpus files (or stdin) against a fresh tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		logPath := cfg.LogPath
		if fuzzLogFile != "" {
			logPath = fuzzLogFile
		}
		log := telemetry.New(telemetry.Options{Path: logPath, Level: cfg.LogLevel})
		degree := resolveDegree(fuzzDegree)

		sources := fuzzCorpus
		if len(sources) == 0 {
			sources = []string{"-"}
		}

		var dirty bool
		for _, path := range sources {
			data, err := readCorpus(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			tr := btree.NewTree[int32](degree)
			report := fuzzcorp.Run(tr, data)
			fingerprint := fuzzcorp.Fingerprint(data)
			fuzzcorp.Log(log, fingerprint, report)

			if !report.Clean() {
				dirty = true
			}
		}

		if dirty {
			return fmt.Errorf("one or more corpus files broke a post-condition, see logs")
		}
		return nil
	},
}

func readCorpus(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func init() {
	fuzzCmd.Flags().StringArrayVar(&fuzzCorpus, "corpus", nil, "corpus file to replay (repeatable; defaults to stdin)")
	fuzzCmd.Flags().IntVar(&fuzzDegree, "degree", 0, "minimum degree (0 uses the configured default)")
	fuzzCmd.Flags().StringVar(&fuzzLogFile, "log-file", "", "rotate fuzz reports to this file instead of the configured log destination")
}
