package cmd

import (
	appcmd "TrailGuide/cmd"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAssetsCommand(withServer serverRunner) *cobra.Command {
	assets := &cobra.Command{
		Use:   "assets",
		Short: "Inspect and clean the asset ledger",
	}

	assets.AddCommand(&cobra.Command{
		Use:   "unreachable",
		Short: "List assets no current revision uses",
		Args:  cobra.NoArgs,
		RunE: withServer(func(cmd *cobra.Command, s *appcmd.Server) error {
			candidates, err := s.JanitorService.Candidates(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}),
	})

	assets.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Soft-delete every unreachable asset",
		Args:  cobra.NoArgs,
		RunE: withServer(func(cmd *cobra.Command, s *appcmd.Server) error {
			report, err := s.JanitorService.ForceStartCleanCycle(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d of %d unreachable assets\n", len(report.Deleted), len(report.Candidates))
			for _, id := range report.Failed {
				fmt.Fprintf(cmd.OutOrStdout(), "failed: %s\n", id)
			}
			return nil
		}),
	})
	return assets
}

func newUsageCommand(withServer serverRunner) *cobra.Command {
	usage := &cobra.Command{
		Use:   "usage",
		Short: "Maintain the asset usage index",
	}
	usage.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Recompute asset usage for every current revision",
		Args:  cobra.NoArgs,
		RunE: withServer(func(cmd *cobra.Command, s *appcmd.Server) error {
			count, err := s.UsageService.RebuildAll(cmd.Context(), s.Sources()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recomputed usage for %d revisions\n", count)
			return nil
		}),
	})
	return usage
}

func newTokenCommand(withServer serverRunner) *cobra.Command {
	var subject string
	var scopes []string
	var ttl time.Duration

	token := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token with the configured secret",
		Args:  cobra.NoArgs,
		RunE: withServer(func(cmd *cobra.Command, s *appcmd.Server) error {
			signed, err := s.AuthService.IssueToken(subject, scopes, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		}),
	}
	token.Flags().StringVar(&subject, "subject", "operator", "token subject")
	token.Flags().StringSliceVar(&scopes, "scope", []string{"read:content", "manage:content"}, "granted scopes")
	token.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return token
}
