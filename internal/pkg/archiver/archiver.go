package archiver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrFileAlreadyExists = errors.New("file already exists")

// ObjectStore is the part of the S3 client the archiver uses.
type ObjectStore interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type File struct {
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	SHA256      string `json:"sha256"`
}

// Archiver writes the files of one export run under Dir and can upload them
// to S3 afterwards. Files are keyed by slash-separated paths relative to Dir.
type Archiver struct {
	Dir string

	Store    ObjectStore
	S3Bucket string

	// S3Prefix is for the files in the bucket with no leading slash but optionally (typically) with trailing slash
	// e.g. "chartboard/" or simply "" (empty string)
	S3Prefix string

	RunID string

	mu     sync.Mutex
	files  []File
	logger zerolog.Logger
}

func New(dir, runID string) (*Archiver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}
	return &Archiver{
		Dir:   dir,
		RunID: runID,
		logger: log.With().
			Str("module", "archiver").
			Str("run", runID).
			Logger(),
	}, nil
}

// WriteFile stores data at rel and records it for the manifest and upload.
func (a *Archiver) WriteFile(rel, contentType string, data []byte) error {
	full := filepath.Join(a.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrap(err, "failed to create directory")
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", rel)
	}

	sum := sha256.Sum256(data)
	a.mu.Lock()
	a.files = append(a.files, File{
		Path:        rel,
		ContentType: contentType,
		Size:        int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
	})
	a.mu.Unlock()

	a.logger.Trace().Str("path", rel).Int("size", len(data)).Msg("wrote file")
	return nil
}

// Files returns the files written so far.
func (a *Archiver) Files() []File {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]File, len(a.files))
	copy(out, a.files)
	return out
}

func (a *Archiver) key(rel string) string {
	return a.S3Prefix + path.Join(a.RunID, rel)
}

// Upload puts every written file into the bucket under S3Prefix/RunID/.
// It refuses to overwrite a run that was already uploaded.
func (a *Archiver) Upload(ctx context.Context) error {
	if a.Store == nil || a.S3Bucket == "" {
		return errors.New("archiver: no object store configured")
	}

	files := a.Files()
	if len(files) == 0 {
		return nil
	}
	if err := a.assertS3FileNonExistence(ctx, files[0].Path); err != nil {
		return err
	}

	for _, f := range files {
		if err := a.uploadFile(ctx, f); err != nil {
			return err
		}
	}
	a.logger.Info().Str("evt.name", "archiver.uploaded").Int("files", len(files)).Str("bucket", a.S3Bucket).Msg("uploaded export")
	return nil
}

func (a *Archiver) assertS3FileNonExistence(ctx context.Context, rel string) error {
	key := a.key(rel)
	object, err := a.Store.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "NotFound" {
			return nil
		}
		return errors.Wrap(err, "failed to invoke HeadObject")
	}
	return errors.Wrap(ErrFileAlreadyExists, fmt.Sprintf("file \"%s\" already exists in s3 with LastModified \"%s\"", key, aws.ToTime(object.LastModified)))
}

func (a *Archiver) uploadFile(ctx context.Context, f File) error {
	data, err := os.ReadFile(filepath.Join(a.Dir, filepath.FromSlash(f.Path)))
	if err != nil {
		return errors.Wrap(err, "failed to read file for upload")
	}
	key := a.key(f.Path)

	return retry.Do(
		func() error {
			_, err := a.Store.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(a.S3Bucket),
				Key:         aws.String(key),
				Body:        bytes.NewReader(data),
				ContentType: aws.String(f.ContentType),
			})
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			a.logger.Warn().Err(err).Uint("attempt", n+1).Str("key", key).Msg("retrying upload")
		}),
	)
}
