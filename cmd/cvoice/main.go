package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cvoice/cvoice/ai"
	"github.com/cvoice/cvoice/ai/agent"
	"github.com/cvoice/cvoice/ai/tools"
	"github.com/cvoice/cvoice/internal/profile"
	"github.com/cvoice/cvoice/internal/version"
	"github.com/cvoice/cvoice/server"
	"github.com/cvoice/cvoice/store"
	"github.com/cvoice/cvoice/store/db"
	"github.com/cvoice/cvoice/store/db/postgres"
)

var rootCmd = &cobra.Command{
	Use:   "cvoice",
	Short: `A voice CV assistant backend. Serves connection tokens for the realtime frontend and answers CV questions over PostgreSQL and semantic search.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Load .env only for direct binary execution; service managers
		// inject environment themselves.
		if os.Getenv("INVOCATION_ID") == "" {
			_ = godotenv.Load()
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			DSN:     viper.GetString("dsn"),
			Version: version.GetCurrentVersion(viper.GetString("mode")),
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			panic(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, pgDB, err := db.NewDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", "error", err)
			return
		}
		defer func() {
			_ = pgDB.Close()
		}()

		storeInstance := store.New(dbDriver)

		embedder, err := ai.NewEmbeddingService(ai.NewEmbeddingConfigFromProfile(instanceProfile))
		if err != nil {
			slog.Error("failed to create embedding service", "error", err)
			return
		}

		chunkIndex, err := postgres.NewChunkIndex(pgDB, instanceProfile.ChunkTable)
		if err != nil {
			slog.Error("failed to open chunk index", "error", err)
			return
		}

		cvTools, err := tools.NewCVTools(storeInstance, embedder, chunkIndex)
		if err != nil {
			slog.Error("failed to create cv tools", "error", err)
			return
		}

		toolset, err := agent.NewCVToolset(cvTools, 0)
		if err != nil {
			slog.Error("failed to create toolset", "error", err)
			return
		}
		slog.Info("agent toolset ready", "tools", len(toolset.Tools()))

		s := server.NewServer(instanceProfile)

		c := make(chan os.Signal, 1)
		// SIGTERM is the graceful shutdown signal used by most process
		// managers (systemd, kubernetes).
		signal.Notify(c, terminationSignals...)

		go func() {
			<-c
			s.Shutdown(ctx)
			cancel()
		}()

		printGreetings(instanceProfile)

		if err := s.Start(ctx); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				slog.Error("failed to start server", "error", err)
				cancel()
			}
		}

		<-ctx.Done()
	},
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("port", 8080)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8080, "port of server")
	rootCmd.PersistentFlags().String("dsn", "", "database source name(aka. DSN)")

	for _, name := range []string{"mode", "addr", "port", "dsn"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("cvoice")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

func printGreetings(profile *profile.Profile) {
	fmt.Printf("cvoice %s started successfully!\n", profile.Version)

	if profile.IsDev() {
		fmt.Fprint(os.Stderr, "Development mode is enabled\n")
		if profile.DSN != "" {
			fmt.Fprintf(os.Stderr, "Database: %s\n", profile.DSN)
		}
	}

	fmt.Printf("Mode: %s\n", profile.Mode)
	if len(profile.Addr) == 0 {
		fmt.Printf("Server running on port %d\n", profile.Port)
	} else {
		fmt.Printf("Server running on %s:%d\n", profile.Addr, profile.Port)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
