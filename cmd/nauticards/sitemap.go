package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordibmorey/nauticards/internal/adapters/upstream"
	"github.com/jordibmorey/nauticards/internal/config"
	"github.com/jordibmorey/nauticards/internal/sitemap"
)

func newSitemapCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml from the upstream catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
			logger, err := newLogger(cfg.Env)
			if err != nil {
				return err
			}
			defer logger.Sync()

			client, err := upstream.New(cfg.UpstreamURL, logger)
			if err != nil {
				return err
			}
			body, err := sitemap.New(cfg.SiteURL, cfg.DefaultLang, client).Generate(cmd.Context())
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = os.Stdout.Write(body)
				return err
			}
			return os.WriteFile(out, body, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file ('-' for stdout)")
	return cmd
}
