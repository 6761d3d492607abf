package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-cosmos/internal/scene"
)

type sceneOptions struct {
	zoom     float64
	date     string
	offsetX  float64
	offsetY  float64
	selected string
	compact  bool
}

// NewSceneCommand creates the scene command
func NewSceneCommand(opts *globalOptions) *cobra.Command {
	so := &sceneOptions{}

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Compute one scene and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The engine falls back to now on a bad timestamp; an explicit
			// flag should not.
			if so.date != "" {
				if _, err := scene.ParseTimestamp(so.date); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := newLogger(cfg, cmd.ErrOrStderr())
			engine, err := newEngine(cfg, log)
			if err != nil {
				return err
			}

			req := scene.Request{
				Timestamp: so.date,
				ZoomLevel: so.zoom,
				OffsetX:   so.offsetX,
				OffsetY:   so.offsetY,
				Selected:  so.selected,
			}
			s, err := engine.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return writeScene(out, s, !so.compact && isTerminal(out))
		},
	}

	cmd.Flags().Float64Var(&so.zoom, "zoom", scene.DefaultZoomLevel, "Zoom level")
	cmd.Flags().StringVar(&so.date, "date", "", `Observation time, "YYYY/MM/DD HH:MM:SS" UTC (default now)`)
	cmd.Flags().Float64Var(&so.offsetX, "offset-x", 0, "Horizontal pan offset in pixels")
	cmd.Flags().Float64Var(&so.offsetY, "offset-y", 0, "Vertical pan offset in pixels")
	cmd.Flags().StringVar(&so.selected, "select", "", "Name of the body to select")
	cmd.Flags().BoolVar(&so.compact, "compact", false, "Never indent output")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeScene(w io.Writer, s scene.Scene, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
