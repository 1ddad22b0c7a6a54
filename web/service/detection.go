package service

import (
	"time"

	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/database/model"
)

// DetectionService is the result ledger: one immutable record per
// classification, plus history and shared-result reads.
type DetectionService struct{}

// Record persists one classification outcome for an owner.
func (s *DetectionService) Record(username, imagePath, prediction string, confidence float64) (*model.DetectionResult, error) {
	db := database.GetDB()
	result := &model.DetectionResult{
		Username:   username,
		ImagePath:  imagePath,
		Prediction: prediction,
		Confidence: confidence,
	}
	if err := db.Create(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// History returns the owner's results, newest first.
func (s *DetectionService) History(username string) ([]model.DetectionResult, error) {
	db := database.GetDB()
	var results []model.DetectionResult
	err := db.Model(&model.DetectionResult{}).
		Where("username = ?", username).
		Order("timestamp desc").
		Find(&results).
		Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Get fetches a single result by id. Deliberately unauthenticated: any
// holder of the numeric id may view that one record (shared results).
func (s *DetectionService) Get(id int) (*model.DetectionResult, error) {
	db := database.GetDB()
	result := &model.DetectionResult{}
	err := db.First(result, id).Error
	if database.IsNotFound(err) {
		return nil, ErrResultNotFound
	} else if err != nil {
		return nil, err
	}
	return result, nil
}

// DateGroup buckets a result timestamp for history display, relative to
// now: same calendar day gets the literal date, the previous day
// "Yesterday", then "This Week" within 7 days and "This Month" within
// 30, and a month/year label for anything older.
func DateGroup(ts, now time.Time) string {
	resultDate := dateOnly(ts.In(now.Location()))
	currentDate := dateOnly(now)

	switch {
	case resultDate.Equal(currentDate):
		return resultDate.Format("January 2, 2006")
	case resultDate.Equal(currentDate.AddDate(0, 0, -1)):
		return "Yesterday"
	case resultDate.After(currentDate.AddDate(0, 0, -7)):
		return "This Week"
	case resultDate.After(currentDate.AddDate(0, 0, -30)):
		return "This Month"
	default:
		return resultDate.Format("January 2006")
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
