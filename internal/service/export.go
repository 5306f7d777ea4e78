package service

import (
	"context"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/archiver"
	"exusiai.dev/chartboard/internal/pkg/async"
	"exusiai.dev/chartboard/internal/pkg/i18n"
	"exusiai.dev/chartboard/internal/pkg/observability"
)

var ErrExportUploadUnavailable = errors.New("export upload requested but no S3 bucket is configured")

const (
	ContentTypePNG  = "image/png"
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	FileWorkbook = "data.xlsx"
	FileManifest = "manifest.json"
	FilePage     = "page.json"
)

type ExportOptions struct {
	OutDir  string
	Locales []string
	Seed    uint64
	Upload  bool
}

// Manifest lists what an export run wrote.
type Manifest struct {
	RunID     string          `json:"runId"`
	CreatedAt time.Time       `json:"createdAt"`
	Seed      uint64          `json:"seed"`
	DPI       int             `json:"dpi"`
	Locales   []string        `json:"locales"`
	Files     []archiver.File `json:"files"`
}

type ExportResult struct {
	Manifest *Manifest
	Dir      string
	Uploaded bool
}

type Export struct {
	GalleryService *Gallery
	ChartService   *Chart
	Config         *appconfig.Config

	s3Client *s3.Client
	lock     *redsync.Mutex
}

// NewExport accepts nil for either client. Without Redis, exports are not
// mutually exclusive across processes; without S3, they stay local.
func NewExport(galleryService *Gallery, chartService *Chart, conf *appconfig.Config, s3Client *s3.Client, rs *redsync.Redsync) *Export {
	s := &Export{
		GalleryService: galleryService,
		ChartService:   chartService,
		Config:         conf,
		s3Client:       s3Client,
	}
	if rs != nil {
		s.lock = rs.NewMutex("mutex:export", redsync.WithExpiry(30*time.Minute), redsync.WithTries(2))
	}
	return s
}

// Run renders every chart for every requested locale into opts.OutDir, along
// with the page model, a workbook of the sample data and a manifest.
func (s *Export) Run(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if opts.Upload && s.s3Client == nil {
		return nil, ErrExportUploadUnavailable
	}
	locales, err := s.locales(opts.Locales)
	if err != nil {
		return nil, err
	}

	if s.lock != nil {
		if err := s.lock.LockContext(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to acquire lock")
		}
		defer s.lock.UnlockContext(context.Background())
	}

	runID := ulid.Make().String()
	arc, err := archiver.New(opts.OutDir, runID)
	if err != nil {
		return nil, err
	}
	if s.s3Client != nil {
		arc.Store = s.s3Client
		arc.S3Bucket = s.Config.ExportS3Bucket
		arc.S3Prefix = s.Config.ExportS3Prefix
	}

	logger := log.With().
		Str("evt.name", "export.run").
		Str("run", runID).
		Logger()
	logger.Info().Strs("locales", locales).Uint64("seed", opts.Seed).Msg("export started")

	for _, locale := range locales {
		if err := s.exportLocale(ctx, arc, locale, opts.Seed); err != nil {
			return nil, errors.Wrapf(err, "export locale %s", locale)
		}
	}

	if err := s.exportWorkbook(ctx, arc, locales[0], opts.Seed); err != nil {
		return nil, err
	}

	manifest := &Manifest{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Seed:      opts.Seed,
		DPI:       s.Config.RenderDPI,
		Locales:   locales,
		Files:     arc.Files(),
	}
	b, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal manifest")
	}
	if err := arc.WriteFile(FileManifest, ContentTypeJSON, b); err != nil {
		return nil, err
	}
	observability.ExportFiles.WithLabelValues("local").Add(float64(len(manifest.Files) + 1))

	res := &ExportResult{Manifest: manifest, Dir: opts.OutDir}
	if opts.Upload {
		if err := arc.Upload(ctx); err != nil {
			return nil, errors.Wrap(err, "upload export")
		}
		observability.ExportFiles.WithLabelValues("s3").Add(float64(len(manifest.Files) + 1))
		res.Uploaded = true
	}

	logger.Info().
		Int("files", len(manifest.Files)+1).
		Bool("uploaded", res.Uploaded).
		Msg("export finished")

	return res, nil
}

func (s *Export) locales(requested []string) ([]string, error) {
	if len(requested) == 0 {
		requested = s.Config.EnabledLocales
	}
	out := lo.Uniq(requested)
	for _, l := range out {
		if !i18n.Supported(l) {
			return nil, errors.Errorf("unsupported locale %q", l)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no locale to export")
	}
	return out, nil
}

func (s *Export) exportLocale(ctx context.Context, arc *archiver.Archiver, locale string, seed uint64) error {
	_, err := async.Map(ctx, gallery.Charts(), s.Config.RenderConcurrency, func(ctx context.Context, c gallery.Chart) (struct{}, error) {
		rendered, err := s.ChartService.Render(ctx, c.ID, locale, seed)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, arc.WriteFile(path.Join(locale, c.ID+".png"), ContentTypePNG, rendered.PNG)
	})
	if err != nil {
		return err
	}

	page := s.GalleryService.Page(ctx, locale, seed)
	b, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal page")
	}
	return arc.WriteFile(path.Join(locale, FilePage), ContentTypeJSON, b)
}

func (s *Export) exportWorkbook(ctx context.Context, arc *archiver.Archiver, locale string, seed uint64) error {
	figs, err := async.Map(ctx, gallery.Charts(), s.Config.RenderConcurrency, func(ctx context.Context, c gallery.Chart) (*model.Figure, error) {
		return s.GalleryService.Figure(ctx, c.ID, locale, seed)
	})
	if err != nil {
		return err
	}

	b, err := writeWorkbook(figs)
	if err != nil {
		return err
	}
	return arc.WriteFile(FileWorkbook, ContentTypeXLSX, b)
}
