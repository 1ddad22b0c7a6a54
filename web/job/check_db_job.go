// Package job contains the scheduled maintenance jobs run by the web
// server's cron instance.
package job

import (
	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/util/common"
)

// CheckDbJob flushes the sqlite WAL into the main database file so the
// on-disk database stays current between restarts.
type CheckDbJob struct{}

func NewCheckDbJob() *CheckDbJob {
	return new(CheckDbJob)
}

// Run implements cron.Job.
func (j *CheckDbJob) Run() {
	defer common.Recover("check db job")
	if err := database.Checkpoint(); err != nil {
		logger.Warning("db checkpoint job err:", err)
	}
}
