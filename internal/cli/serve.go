package cli

import (
	"github.com/spf13/cobra"

	"github.com/litescript/ls-cosmos/internal/server"
)

// NewServeCommand creates the serve command
func NewServeCommand(opts *globalOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenes over HTTP",
		Long: `Start the HTTP adapter. POST /planet_data takes
{"datum", "zoom_level", "offset_x", "offset_y", "selected_planet"} and
returns the scene as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			log := newLogger(cfg, cmd.ErrOrStderr())
			engine, err := newEngine(cfg, log)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			return server.New(engine, cfg.Server, log.Named("server")).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "addr", "", "Listen address, overrides config (e.g. :8080)")
	return cmd
}
