package service

import (
	"github.com/Goutham7675/eyecare-ai/database"
	"github.com/Goutham7675/eyecare-ai/database/model"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/util/crypto"

	"gorm.io/gorm"
)

// UserService handles account registration and credential checks.
type UserService struct {
	auditService AuditService
}

// Register creates an account. A duplicate email fails with
// ErrEmailTaken before the insert; a duplicate username surfaces as the
// store's uniqueness violation. Every successful insert is mirrored to
// the users CSV, best effort.
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	db := database.GetDB()

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	s.auditService.RecordUser(user.Id, user.Username, user.Email, user.Password)
	logger.Infof("new user registered: %s", email)
	return user, nil
}

// CheckUser validates credentials. The identifier is tried as an exact
// username first, then as an email; the first hit wins. Returns nil for
// any failure.
func (s *UserService) CheckUser(identifier, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("username = ?", identifier).
		First(user).
		Error
	if database.IsNotFound(err) {
		err = db.Model(&model.User{}).
			Where("email = ?", identifier).
			First(user).
			Error
	}
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// GetUser looks an account up by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	if err := db.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}
