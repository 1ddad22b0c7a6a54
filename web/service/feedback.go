package service

import (
	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/database/model"
)

// FeedbackService appends user feedback entries.
type FeedbackService struct {
	auditService AuditService
}

// Add stores one feedback message and mirrors it to the feedback CSV,
// best effort.
func (s *FeedbackService) Add(username, message string) (*model.Feedback, error) {
	if message == "" {
		return nil, ErrMissingFields
	}

	db := database.GetDB()
	feedback := &model.Feedback{
		Username: username,
		Message:  message,
	}
	if err := db.Create(feedback).Error; err != nil {
		return nil, err
	}

	s.auditService.RecordFeedback(feedback.Id, username, message)
	return feedback, nil
}
