// Package publish uploads an exported site to S3.
package publish

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

// Client is the subset of *s3.Client the publisher uses.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	s3.ListObjectsV2APIClient
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	Bucket string

	// Prefix is prepended to every key, e.g. "site/".
	Prefix string

	// Prune deletes objects under Prefix that the export no longer has.
	// It is refused when Prefix is empty.
	Prune bool
}

// Result describes a publish run.
type Result struct {
	Uploaded []string
	Deleted  []string
	Bytes    int64
}

// Publisher uploads files from an afero filesystem.
type Publisher struct {
	client Client
	opts   Options
	logger *slog.Logger
}

// New creates a Publisher. It fails with E182 when no bucket is set and with
// E183 when Prune is set without a prefix.
func New(client Client, opts Options, logger *slog.Logger) (*Publisher, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, siteerrors.New("E182")
	}
	opts.Prefix = normalizePrefix(opts.Prefix)
	if opts.Prune && opts.Prefix == "" {
		return nil, siteerrors.New("E183")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		opts:   opts,
		logger: logger.With("component", "publish", "bucket", opts.Bucket),
	}, nil
}

// NewClient builds an S3 client from the standard AWS environment
// variables. region overrides AWS_REGION when non-empty.
func NewClient(region string) (*s3.Client, error) {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		return nil, siteerrors.New("E180").WithDetail("no region: pass --region or set AWS_REGION")
	}
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" || os.Getenv("AWS_SECRET_ACCESS_KEY") == "" {
		return nil, siteerrors.New("E180").WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}), nil
}

func envCredentials(context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}, nil
}

// Publish uploads every file of src.
func (p *Publisher) Publish(ctx context.Context, src afero.Fs) (*Result, error) {
	res := &Result{}
	keep := make(map[string]bool)

	err := afero.Walk(src, "/", func(name string, info fs.FileInfo, err error) error {
		if err != nil {
			return siteerrors.New("E181").WithDetail(name).Wrap(err)
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(filepath.ToSlash(name), "/")
		data, err := afero.ReadFile(src, name)
		if err != nil {
			return siteerrors.New("E181").WithDetail(rel).Wrap(err)
		}

		key := p.opts.Prefix + rel
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.opts.Bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(data),
			ContentType:  aws.String(ContentType(rel)),
			CacheControl: aws.String(cacheControl(rel)),
		})
		if err != nil {
			return siteerrors.New("E181").WithDetail(key).Wrap(err)
		}
		p.logger.Debug("uploaded", "key", key, "bytes", len(data))

		keep[key] = true
		res.Uploaded = append(res.Uploaded, key)
		res.Bytes += int64(len(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.opts.Prune {
		deleted, err := p.prune(ctx, keep)
		if err != nil {
			return nil, err
		}
		res.Deleted = deleted
	}

	p.logger.Info("publish complete",
		"uploaded", len(res.Uploaded),
		"deleted", len(res.Deleted),
		"bytes", res.Bytes,
	)
	return res, nil
}

// prune removes objects under the prefix that are not in keep.
func (p *Publisher) prune(ctx context.Context, keep map[string]bool) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.opts.Bucket),
		Prefix: aws.String(p.opts.Prefix),
	})

	var stale []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, siteerrors.New("E181").WithDetail("list " + p.opts.Prefix).Wrap(err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil && !keep[*obj.Key] {
				stale = append(stale, *obj.Key)
			}
		}
	}

	for _, key := range stale {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.opts.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, siteerrors.New("E181").WithDetail("delete " + key).Wrap(err)
		}
		p.logger.Debug("deleted", "key", key)
	}
	return stale, nil
}

// ContentType returns the MIME type for a file name, defaulting to
// application/octet-stream.
func ContentType(name string) string {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case "":
		return "application/octet-stream"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}

// HTML is revalidated on every visit; other assets may be cached.
func cacheControl(name string) string {
	if strings.HasSuffix(name, ".html") {
		return "no-cache"
	}
	return "public, max-age=3600"
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
