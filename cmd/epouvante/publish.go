package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/petitemaison/epouvante/internal/publish"
)

func publishCmd(configPath *string) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the site and upload it to S3",
		Long: `Export the site in memory and upload every file to an S3 bucket
with its content type. Credentials come from the AWS_* environment.

Examples:
  epouvante publish --bucket petite-maison-www
  epouvante publish --bucket petite-maison-www --prefix preview --prune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.Publish.Bucket
			}
			if prefix == "" {
				prefix = cfg.Publish.Prefix
			}
			if region == "" {
				region = cfg.Publish.Region
			}

			out := afero.NewMemMapFs()
			if _, err := runExport(cmd.Context(), *configPath, cmd.ErrOrStderr(), out); err != nil {
				return err
			}

			client, err := publish.NewClient(region)
			if err != nil {
				return err
			}
			p, err := publish.New(client, publish.Options{Bucket: bucket, Prefix: prefix, Prune: prune}, cfg.NewLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			res, err := p.Publish(cmd.Context(), out)
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Published %d files to s3://%s/%s", len(res.Uploaded), bucket, prefix)
			if len(res.Deleted) > 0 {
				info(cmd.OutOrStdout(), "Removed %d stale objects", len(res.Deleted))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default AWS_REGION)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete objects under --prefix that the export no longer contains (requires --prefix)")

	return cmd
}
