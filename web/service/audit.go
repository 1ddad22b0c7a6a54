package service

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Goutham7675/eyecare-ai/config"
	"github.com/Goutham7675/eyecare-ai/logger"
)

const (
	usersCSV    = "users.csv"
	feedbackCSV = "feedback.csv"
)

// AuditService maintains the append-only CSV mirrors of account and
// feedback writes. Every method is best-effort: failures are logged and
// never propagated, the database remains the source of truth.
type AuditService struct{}

// Init creates the data folder and the CSV files with their headers if
// they do not exist yet.
func (s *AuditService) Init() {
	dir := config.GetDataFolder()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Warning("audit: create data folder:", err)
		return
	}
	s.ensureHeader(filepath.Join(dir, usersCSV), []string{"id", "username", "email", "password", "timestamp"})
	s.ensureHeader(filepath.Join(dir, feedbackCSV), []string{"id", "username", "message", "timestamp"})
}

// RecordUser appends one registration row to the users mirror.
func (s *AuditService) RecordUser(id int, username, email, passwordHash string) {
	s.append(usersCSV, []string{
		strconv.Itoa(id),
		username,
		email,
		passwordHash,
		time.Now().Format("2006-01-02 15:04:05"),
	})
}

// RecordFeedback appends one feedback row to the feedback mirror.
func (s *AuditService) RecordFeedback(id int, username, message string) {
	s.append(feedbackCSV, []string{
		strconv.Itoa(id),
		username,
		message,
		time.Now().Format("2006-01-02 15:04:05"),
	})
}

func (s *AuditService) ensureHeader(path string, header []string) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o640)
	if err != nil {
		logger.Warningf("audit: create %s: %v", path, err)
		return
	}
	defer file.Close()
	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		logger.Warningf("audit: write header %s: %v", path, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Warningf("audit: flush header %s: %v", path, err)
	}
}

func (s *AuditService) append(name string, row []string) {
	path := filepath.Join(config.GetDataFolder(), name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		logger.Warningf("audit: open %s: %v", path, err)
		return
	}
	defer file.Close()
	w := csv.NewWriter(file)
	if err := w.Write(row); err != nil {
		logger.Warningf("audit: append %s: %v", path, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Warningf("audit: flush %s: %v", path, err)
	}
}
