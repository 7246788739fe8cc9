package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve [scenario.json]",
	Short: "Serve the search over HTTP with a WebSocket stream",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if serveAddrFlag != "" {
			cfg.Server.Addr = serveAddrFlag
		}

		path := scenarioArg(args)
		sc, err := loadScenarioOrDefault(path)
		if err != nil {
			return err
		}

		server, err := NewServer(sc, cfg.Server)
		if err != nil {
			return err
		}

		if path != "" {
			watcher, err := NewScenarioWatcher(path, func(next *Scenario) {
				if err := server.ReplaceScenario(next); err != nil {
					log.Printf("⚠️  Ignoring reloaded scenario: %v\n", err)
				}
			})
			if err != nil {
				return err
			}
			defer watcher.Close()
		}

		httpServer := &http.Server{Addr: cfg.Server.Addr, Handler: server.Handler()}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Println("========================================")
		log.Println("🚀 Grid Search Server")
		log.Println("========================================")
		log.Printf("Serving %s (%dx%d, %s) on %s\n", sc.Name, sc.Width, sc.Height, sc.Mode, cfg.Server.Addr)
		log.Println("")
		log.Println("Endpoints:")
		log.Println("  GET  /health         - Check server status")
		log.Println("  GET  /api/scenario   - Current scenario")
		log.Println("  POST /api/scenario   - Replace scenario and restart")
		log.Println("  GET  /api/state      - Search snapshot")
		log.Println("  POST /api/step?n=K   - Advance K relaxation steps")
		log.Println("  POST /api/reset      - Restart the search")
		log.Println("  GET  /api/stream     - WebSocket snapshot stream")
		log.Println("")
		log.Println("CORS enabled for all origins")
		log.Println("========================================")

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			log.Println("🛑 Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
