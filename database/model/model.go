// Package model defines the gorm models persisted by the application.
package model

import "time"

// User is an account record. Accounts are created at registration and
// never mutated or deleted in-app.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
}

// DetectionResult is one classification of one uploaded image.
// Records are immutable once written.
type DetectionResult struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username   string    `json:"username" gorm:"index;not null"`
	ImagePath  string    `json:"image_path" gorm:"not null"`
	Prediction string    `json:"prediction" gorm:"not null"`
	Confidence float64   `json:"confidence" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null;autoCreateTime"`
}

// Feedback is an append-only user feedback entry.
type Feedback struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;autoCreateTime"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;autoCreateTime"`
}
