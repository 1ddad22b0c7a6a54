package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Goutham7675/eyecare-ai/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("EYECARE_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

// A job must never take the scheduler down, even when the database is
// unavailable.
func TestCheckDbJobRecovers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCheckDbJob().Run()
	})
}

func TestUploadSweepJobMissingFolder(t *testing.T) {
	t.Setenv("EYECARE_UPLOAD_FOLDER", filepath.Join(t.TempDir(), "missing"))
	assert.NotPanics(t, func() {
		NewUploadSweepJob().Run()
	})
}
