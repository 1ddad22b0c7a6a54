package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("EYECARE_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

// setupTest opens a throwaway database and points the data and upload
// folders at a temp dir.
func setupTest(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("EYECARE_DATA_FOLDER", filepath.Join(dir, "data"))
	t.Setenv("EYECARE_UPLOAD_FOLDER", filepath.Join(dir, "uploads"))

	err := database.InitDB(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}
