package service

import (
	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/database/model"
	"github.com/Goutham7675/eyecare-ai/logger"
)

// ContactService stores messages from the public contact form.
type ContactService struct{}

// Add validates and persists one contact submission.
func (s *ContactService) Add(name, email, subject, message string) (*model.Contact, error) {
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, ErrMissingFields
	}

	db := database.GetDB()
	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := db.Create(contact).Error; err != nil {
		return nil, err
	}

	logger.Infof("new contact form submission from %s", email)
	return contact, nil
}
