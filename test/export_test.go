package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/chartboard/internal/pkg/testentry"
	"exusiai.dev/chartboard/internal/service"
)

func TestExportCommandDeps(t *testing.T) {
	var exportService *service.Export
	testentry.Populate(t, &exportService)

	dir := t.TempDir()
	res, err := exportService.Run(context.Background(), service.ExportOptions{
		OutDir:  dir,
		Locales: []string{"ko"},
		Seed:    42,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "ko", "pie-composition.png"))
	assert.FileExists(t, filepath.Join(dir, service.FileWorkbook))
	assert.FileExists(t, filepath.Join(dir, service.FileManifest))
	assert.NotEmpty(t, res.Manifest.RunID)
}
