package appconfig

import (
	"time"

	"exusiai.dev/chartboard/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving the dashboard.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// LogFileMaxSizeMB is the size in megabytes a log file grows to before it is rotated.
	LogFileMaxSizeMB int `split_words:"true" default:"100"`

	// LogFileMaxBackups is the number of rotated log files to keep.
	LogFileMaxBackups int `split_words:"true" default:"5"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"jaeger"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// RedisURL is the URL of the Redis server. Leaving this empty disables the shared chart cache
	// and export locking. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// FontPath is the TrueType font charts are drawn with. It must cover Hangul for the Korean page.
	FontPath string `split_words:"true" default:"fonts/NanumGothic-Regular.ttf"`

	// FontBoldPath is an optional bold companion of FontPath.
	FontBoldPath string `split_words:"true" default:"fonts/NanumGothic-Bold.ttf"`

	// FontRequired makes startup fail when FontPath cannot be loaded, instead of falling back to built-in fonts.
	FontRequired bool `split_words:"true" default:"false"`

	// RenderDPI is the resolution charts are rasterized at.
	RenderDPI int `split_words:"true" default:"100"`

	// RenderConcurrency bounds how many charts are rendered at once by exports and the warmer.
	RenderConcurrency int `split_words:"true" default:"4"`

	// SampleSeed is the default seed random sample data is drawn with.
	SampleSeed uint64 `split_words:"true" default:"42"`

	// DefaultLocale is used when neither the lang query nor Accept-Language picks an enabled locale.
	DefaultLocale string `split_words:"true" default:"ko"`

	// EnabledLocales lists the locales the page may be served in.
	EnabledLocales []string `split_words:"true" default:"ko,en"`

	// ChartCacheTTL is how long a rendered chart stays in the cache tiers.
	ChartCacheTTL time.Duration `split_words:"true" default:"1h"`

	// WarmerEnabled is a flag to indicate whether to pre-render charts in the background.
	WarmerEnabled bool `split_words:"true"`

	// WarmerInterval describes the interval in-between different warm-up rounds.
	WarmerInterval time.Duration `split_words:"true" default:"30m"`

	// ExportS3Bucket is the bucket exports are uploaded to. Leaving this empty disables uploads.
	ExportS3Bucket string `split_words:"true"`

	// ExportS3Region is the region of ExportS3Bucket.
	ExportS3Region string `split_words:"true" default:"us-east-1"`

	// ExportS3Prefix is prepended to every uploaded object key.
	ExportS3Prefix string `split_words:"true" default:"chartboard/"`

	// AWSAccessKey and AWSSecretKey are static credentials for uploads. When left empty the default
	// AWS credential chain is used.
	AWSAccessKey string `envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `envconfig:"AWS_SECRET_KEY"`

	// AdminKey is the key used to authenticate the admin API. Leaving this empty disables the admin API.
	AdminKey string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
