package cmd

import (
	appcmd "TrailGuide/cmd"

	"github.com/spf13/cobra"
)

// Initializer builds the server graph for a configuration file and returns
// its cleanup.
type Initializer func(configPath string) (*appcmd.Server, func(), error)

func NewRootCommand(initialize Initializer) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "trailguide",
		Short:         "Trail guide content server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "trailguide.yaml", "path to the YAML configuration")

	// withServer runs fn against a fully wired server and releases it after.
	var withServer serverRunner = func(fn func(cmd *cobra.Command, server *appcmd.Server) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			server, cleanup, err := initialize(configPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return fn(cmd, server)
		}
	}

	serve := newServeCommand(withServer)
	root.RunE = serve.RunE
	root.AddCommand(
		serve,
		newAssetsCommand(withServer),
		newUsageCommand(withServer),
		newTokenCommand(withServer),
	)
	return root
}

type serverRunner func(fn func(cmd *cobra.Command, server *appcmd.Server) error) func(*cobra.Command, []string) error
