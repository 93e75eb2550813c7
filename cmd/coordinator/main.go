package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/robertlopezdev/queryapi/pkg/blockstreams"
	"github.com/robertlopezdev/queryapi/pkg/coordinator"
	"github.com/robertlopezdev/queryapi/pkg/executors"
	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/metrics"
	"github.com/robertlopezdev/queryapi/pkg/registry"
	"github.com/robertlopezdev/queryapi/pkg/store"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coordinator",
	Short: "Coordinator - reconciliation control plane for QueryAPI indexers",
	Long: `Coordinator continuously reconciles the on-chain indexer registry
against the running block stream and executor fleets, so that every
registered indexer has exactly one block stream and one executor
running its current version.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}

		return run(cfg)
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Coordinator version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.Flags().String("config", "", "Path to YAML config file")
	rootCmd.Flags().String("rpc-url", "", "JSON-RPC endpoint for registry reads")
	rootCmd.Flags().String("contract-id", "", "Registry contract account ID")
	rootCmd.Flags().String("block-streamer-url", "", "Block streamer gRPC address")
	rootCmd.Flags().String("runner-url", "", "Runner gRPC address")
	rootCmd.Flags().String("data-dir", "", "Directory for durable coordinator state")
	rootCmd.Flags().String("metrics-addr", "", "Listen address for metrics and health endpoints")
	rootCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// applyFlags overlays any explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	overlay := func(flag string, target *string) {
		if cmd.Flags().Changed(flag) {
			*target, _ = cmd.Flags().GetString(flag)
		}
	}
	overlay("rpc-url", &cfg.RegistryRPCURL)
	overlay("contract-id", &cfg.RegistryContractID)
	overlay("block-streamer-url", &cfg.BlockStreamerURL)
	overlay("runner-url", &cfg.RunnerURL)
	overlay("data-dir", &cfg.DataDir)
	overlay("metrics-addr", &cfg.MetricsAddr)
	overlay("log-level", &cfg.LogLevel)
}

func run(cfg *Config) error {
	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.LogJSON,
	})

	logger := log.WithComponent("main")
	logger.Info().
		Str("version", Version).
		Str("rpc_url", cfg.RegistryRPCURL).
		Str("contract_id", cfg.RegistryContractID).
		Str("block_streamer_url", cfg.BlockStreamerURL).
		Str("runner_url", cfg.RunnerURL).
		Msg("Starting coordinator")

	boltStore, err := store.NewBoltStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer boltStore.Close()

	registryClient := registry.Connect(types.AccountID(cfg.RegistryContractID), cfg.RegistryRPCURL)

	streamHandler, err := blockstreams.Connect(cfg.BlockStreamerURL)
	if err != nil {
		return fmt.Errorf("failed to connect to block streamer: %w", err)
	}
	defer streamHandler.Close()

	executorHandler, err := executors.Connect(cfg.RunnerURL)
	if err != nil {
		return fmt.Errorf("failed to connect to runner: %w", err)
	}
	defer executorHandler.Close()

	metrics.RegisterComponent("control_loop", true, "starting")
	metricsServer := startMetricsServer(cfg.MetricsAddr)
	defer shutdownMetricsServer(metricsServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
		cancel()
	}()

	coord := coordinator.New(registryClient, boltStore, streamHandler, executorHandler)

	metrics.UpdateComponent("control_loop", true, "running")

	err = coord.Run(ctx)
	if err != nil && ctx.Err() == nil {
		metrics.UpdateComponent("control_loop", false, err.Error())
		return fmt.Errorf("control loop failed: %w", err)
	}

	logger.Info().Msg("Coordinator stopped")
	return nil
}

func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/health", metrics.HealthHandler())
	mux.Handle("/healthz", metrics.LivenessHandler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger := log.WithComponent("metrics")
			logger.Error().Err(err).Msg("Metrics server failed")
		}
	}()

	return server
}

func shutdownMetricsServer(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger := log.WithComponent("metrics")
		logger.Error().Err(err).Msg("Metrics server shutdown failed")
	}
}
