// Package config exposes process-wide settings sourced from the
// environment, with embedded version and name metadata.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Goutham7675/eyecare-ai/util/random"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// sessionSecret is generated once per process when EYECARE_SECRET is unset.
var sessionSecret string

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("EYECARE_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("EYECARE_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("EYECARE_LISTEN")
}

func GetPort() string {
	port := os.Getenv("EYECARE_PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("EYECARE_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "instance"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("EYECARE_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

// GetUploadFolder is the public directory uploaded images are stored in.
// It is served under /static/uploads/ by the web server.
func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("EYECARE_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "static/uploads"
	}
	return uploadFolderPath
}

// GetDataFolder holds the append-only CSV audit mirrors.
func GetDataFolder() string {
	dataFolderPath := os.Getenv("EYECARE_DATA_FOLDER")
	if dataFolderPath == "" {
		dataFolderPath = "data"
	}
	return dataFolderPath
}

// GetSessionSecret returns the cookie-signing secret. Without
// EYECARE_SECRET a random secret is generated at startup, which
// invalidates existing sessions on restart.
func GetSessionSecret() string {
	secret := os.Getenv("EYECARE_SECRET")
	if secret != "" {
		return secret
	}
	if sessionSecret == "" {
		sessionSecret = random.Seq(32)
	}
	return sessionSecret
}
