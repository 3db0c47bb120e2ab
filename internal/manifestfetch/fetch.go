// Package manifestfetch resolves s3:// manifest paths and
// default_bindings[].binding_url entries via Amazon S3. It satisfies
// internal/session.FetchManifest and
// internal/manifest.FetchBindingFile so neither package ever touches
// the network directly; a local path still goes through
// internal/session.ReadLocalManifest exactly as before.
package manifestfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Supreeeme/xrizer/internal/logger"
	"github.com/Supreeeme/xrizer/internal/manifest/schema"
)

// s3API is the subset of *s3.Client Fetcher needs, so tests can
// substitute a stub instead of talking to real S3.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config configures a Fetcher, sourced from config.ManifestConfig's
// s3_region/cache_dir/fetch_timeout fields (plus the optional static
// credential overrides, for S3-compatible endpoints that don't use the
// default AWS credential chain).
type Config struct {
	Region          string
	CacheDir        string
	FetchTimeout    time.Duration
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
}

// Fetcher resolves s3:// manifest and binding-file URIs, caching each
// downloaded object under CacheDir so a repeated fetch of the same
// object (e.g. SetActionManifestPath called again after a restart)
// does not re-hit the network.
type Fetcher struct {
	client   s3API
	cacheDir string
	timeout  time.Duration
}

// New builds a Fetcher. When cfg.AccessKeyID is empty it defers to the
// default AWS credential chain (environment, shared config,
// EC2/ECS/EKS instance role); otherwise it uses the given static
// credentials, mirroring how an S3-compatible endpoint is usually
// configured.
func New(ctx context.Context, cfg Config) (*Fetcher, error) {
	if cfg.CacheDir != "" {
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("manifestfetch: create cache dir %q: %w", cfg.CacheDir, err)
		}
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("manifestfetch: load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{client: client, cacheDir: cfg.CacheDir, timeout: timeout}, nil
}

// IsRemote reports whether path is an s3:// URI a Fetcher can resolve,
// as opposed to a plain filesystem path handed to
// internal/session.ReadLocalManifest.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// FetchManifest implements internal/session.FetchManifest for s3://
// manifest paths.
func (f *Fetcher) FetchManifest(path string) ([]byte, error) {
	return f.fetch(path)
}

// FetchBindingFile implements internal/manifest.FetchBindingFile for
// s3:// default_bindings[].binding_url entries.
func (f *Fetcher) FetchBindingFile(url string) (schema.BindingFile, error) {
	raw, err := f.fetch(url)
	if err != nil {
		return schema.BindingFile{}, err
	}
	var bf schema.BindingFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return schema.BindingFile{}, fmt.Errorf("manifestfetch: parse binding file %q: %w", url, err)
	}
	return bf, nil
}

// fetch downloads uri from S3, serving the local cache copy if one
// exists. A fetch failure is reported the same way a missing local
// file is: a wrapped error, never a panic or a silent empty result.
func (f *Fetcher) fetch(uri string) ([]byte, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, fmt.Errorf("manifestfetch: %q: %w", uri, err)
	}

	cachePath := f.cachePath(bucket, key)
	if cachePath != "" {
		if raw, err := os.ReadFile(cachePath); err == nil {
			return raw, nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("manifestfetch: fetch %q: %w", uri, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("manifestfetch: read %q: %w", uri, err)
	}

	if cachePath != "" {
		if err := os.WriteFile(cachePath, raw, 0o644); err != nil {
			logger.Warn("manifestfetch: failed to cache fetched object", "uri", uri, "error", err)
		}
	}
	return raw, nil
}

// cachePath returns the local cache file path for bucket/key, or "" if
// caching is disabled.
func (f *Fetcher) cachePath(bucket, key string) string {
	if f.cacheDir == "" {
		return ""
	}
	safeKey := strings.ReplaceAll(key, "/", "_")
	return filepath.Join(f.cacheDir, bucket+"_"+safeKey)
}

// parseS3URI splits an s3://bucket/key URI into its bucket and key.
func parseS3URI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", "", fmt.Errorf("not an s3:// uri")
	}
	rest := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected s3://bucket/key, got %q", uri)
	}
	return parts[0], parts[1], nil
}
