package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/standup-lab/standup/pkg/cli/config"
	httpctrl "github.com/standup-lab/standup/pkg/controller/http"
	"github.com/standup-lab/standup/pkg/usecase"
	"github.com/standup-lab/standup/pkg/utils/logging"
	"github.com/standup-lab/standup/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var authCfg config.Auth

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("STANDUP_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			tokens, err := authCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}

			uc := usecase.New(repo, tokens)
			handler := httpctrl.New(uc, tokens,
				httpctrl.WithSecureCookie(authCfg.IsProduction()),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "auth", authCfg)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
