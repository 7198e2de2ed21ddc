package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openjudge/arbiter/internal/api"
	"github.com/openjudge/arbiter/internal/audit"
	"github.com/openjudge/arbiter/internal/config"
	"github.com/openjudge/arbiter/internal/judge"
	"github.com/openjudge/arbiter/internal/lang"
	"github.com/openjudge/arbiter/internal/sandbox"
	"github.com/openjudge/arbiter/internal/store"
)

// NewServeCmd creates the serve command for the judging API server.
func NewServeCmd() *cobra.Command {
	var (
		port   int
		bind   string
		dbPath string
		noDB   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the judging API server",
		Long: `Start an HTTP server exposing the judging API.

POST /execute accepts a submission with test cases and returns a single
verdict. Concurrent judgements are bounded; each one owns a disjoint
workspace directory and sandbox container.

Sandbox roots come from the environment: CONTAINER_SANDBOX_ROOT (default
/sandbox) and HOST_SANDBOX_ROOT (required).`,
		Example: `  arbiter serve
  arbiter serve --port 9090
  arbiter serve --bind 0.0.0.0 --db .arbiter/state.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if bind == "" {
				bind = cfg.Runtime.Bind
			}
			if port == 0 {
				port = cfg.Runtime.Port
			}

			// Fail fast on sandbox misconfiguration instead of per-request.
			if _, err := sandbox.ResolveRoots(); err != nil {
				return err
			}

			var submissions store.Store
			if !noDB {
				if dbPath == "" {
					dbPath = cfg.Runtime.DBPath
				}
				submissions, err = store.NewStore(dbPath)
				if err != nil {
					return fmt.Errorf("failed to open submission store: %w", err)
				}
			}

			logger, err := audit.NewTraceLogger(cfg.Runtime.TraceDir)
			if err != nil {
				return fmt.Errorf("failed to open trace log: %w", err)
			}
			defer logger.Close()

			pipeline := judge.NewPipeline(lang.Config{
				Runner: sandbox.NewRunner(),
				Images: cfg.Images,
				Policy: cfg.Policy(),
			}, judge.WithAuditLogger(logger))

			srv, err := api.NewServer(api.ServerConfig{
				Bind:                    bind,
				Port:                    port,
				MaxConcurrentJudgements: cfg.Runtime.MaxConcurrentJudgements,
				Pipeline:                pipeline,
				Store:                   submissions,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVar(&bind, "bind", "", "Address to bind to (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the submission database")
	cmd.Flags().BoolVar(&noDB, "no-db", false, "Disable submission history")

	return cmd
}
