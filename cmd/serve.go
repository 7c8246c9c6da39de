package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/container"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := config.WithContext(ctx)

		db, err := openDB(ctx)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer config.Close(db)

		c := container.New(ctx, db, settings)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", settings.Port),
			Handler:           c.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Infof("Listening on %s (hint provider: %s)", srv.Addr, c.AIHintContainer.Provider.Name())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			log.Infof("Received signal %s, shutting down", sig)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "HTTP port (env PORT, default 8000)")
	bindFlagToViper("port", serveCmd.Flags().Lookup("port"))
}
