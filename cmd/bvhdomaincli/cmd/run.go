package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelsim/bvhdomain/config"
	"github.com/kestrelsim/bvhdomain/frames"
	"github.com/kestrelsim/bvhdomain/pipeline"
	"github.com/kestrelsim/bvhdomain/render"
)

var (
	runInput    string
	runObjects  int
	runMaxFrame int
	runDumpTree bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a CSV frame sequence through a tracker session",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input CSV file (required)")
	runCmd.Flags().IntVarP(&runObjects, "objects", "n", 0, "number of tracked objects per frame (required)")
	runCmd.Flags().IntVar(&runMaxFrame, "frames", 0, "stop after this many frames (0 = no limit)")
	runCmd.Flags().BoolVar(&runDumpTree, "dump-tree", false, "print the tree structure after each rebuild")
	runCmd.MarkFlagRequired("input")
	runCmd.MarkFlagRequired("objects")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Objects = runObjects

	f, err := os.Open(runInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	src := frames.NewCSVSource(f, runObjects)
	if err := src.SkipHeader(); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	sess := pipeline.NewSession(cfg.Subdomains, cfg.RebuildThreshold, pipeline.WithLogger(GetLogger()))
	sink := render.NopSink{}

	frameIdx := 0
	for runMaxFrame == 0 || frameIdx < runMaxFrame {
		frame, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read frame %d: %w", frameIdx, err)
		}

		res, err := sess.Step(frame.AABBs)
		if err != nil {
			return fmt.Errorf("step frame %d: %w", frameIdx, err)
		}
		sink.VisitFrame(frame.AABBs, res.Groups)

		GetLogger().Debug("frame %d (t=%v): %d groups, rebuilt=%v", frameIdx, frame.Time, len(res.Groups), res.Rebuilt)
		if runDumpTree && res.Rebuilt {
			fmt.Println(sess.Tree().DumpString())
		}
		frameIdx++
	}

	GetLogger().Info("processed %d frames", frameIdx)
	if sess.Tree() != nil {
		GetLogger().Info("final tree: height=%d volume=%v", sess.Tree().Height(), sess.Tree().TotalVolume())
	}
	return nil
}
