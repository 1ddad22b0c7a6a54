package job

import (
	"os"
	"path/filepath"

	"github.com/Goutham7675/eyecare-ai/config"
	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/database/model"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/util/common"
)

// UploadSweepJob scans the public upload folder for files no longer
// referenced by any detection result. Orphans can appear when a result
// insert fails after the file was stored, or when a collision
// overwrote a referenced image. Report-only: nothing is deleted.
type UploadSweepJob struct{}

func NewUploadSweepJob() *UploadSweepJob {
	return new(UploadSweepJob)
}

// Run implements cron.Job.
func (j *UploadSweepJob) Run() {
	defer common.Recover("upload sweep job")
	uploadDir := config.GetUploadFolder()
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("upload sweep job err:", err)
		}
		return
	}

	var paths []string
	if err := database.GetDB().
		Model(&model.DetectionResult{}).
		Distinct().
		Pluck("image_path", &paths).
		Error; err != nil {
		logger.Warning("upload sweep job err:", err)
		return
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[filepath.Base(p)] = true
	}

	orphans := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !referenced[entry.Name()] {
			orphans++
			logger.Debugf("upload sweep: orphaned file %s", filepath.Join(uploadDir, entry.Name()))
		}
	}
	if orphans > 0 {
		logger.Infof("upload sweep: %d orphaned file(s) in %s", orphans, uploadDir)
	}
}
