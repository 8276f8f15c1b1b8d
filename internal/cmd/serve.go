package cmd

import (
	appcmd "TrailGuide/cmd"
	"TrailGuide/internal/server"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(withServer serverRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: withServer(func(cmd *cobra.Command, s *appcmd.Server) error {
			s.JanitorService.StartCleanCycle()
			defer s.JanitorService.StopClean()

			app := server.NewApp(s)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				s.LogService.Log.WithFields(logrus.Fields{
					"status": "stopping",
				}).Info("Shutting down server")
				_ = app.Shutdown()
			}()

			s.LogService.Log.WithFields(logrus.Fields{
				"port": s.Configuration.Server.Port,
			}).Info("Starting server")
			return server.Listen(app, s)
		}),
	}
}
