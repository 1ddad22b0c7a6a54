package service

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Goutham7675/eyecare-ai/classifier"
	"github.com/Goutham7675/eyecare-ai/config"
	"github.com/Goutham7675/eyecare-ai/database/model"
	"github.com/Goutham7675/eyecare-ai/logger"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ScanService accepts an uploaded retinal image, stores it under the
// public upload folder, runs it through the classifier and records the
// result in the ledger.
type ScanService struct {
	detectionService DetectionService

	model classifier.Classifier
}

// NewScanService builds a scan service around a classifier. The stub
// model stands in until a trained network is wired up.
func NewScanService(model classifier.Classifier) *ScanService {
	return &ScanService{model: model}
}

// AllowedFile reports whether the filename carries a permitted image
// extension, case-insensitively.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips any directory components so uploads cannot
// escape the upload folder. Collisions between identical names
// deliberately overwrite, last writer wins.
func SanitizeFilename(filename string) string {
	name := filepath.Base(filepath.Clean(filename))
	name = strings.ReplaceAll(name, "..", "")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return ""
	}
	return name
}

// Process runs the full upload pipeline for one image and returns the
// persisted result together with the prediction drawn for it.
func (s *ScanService) Process(fileHeader *multipart.FileHeader, username string) (*model.DetectionResult, *classifier.Prediction, error) {
	filename := SanitizeFilename(fileHeader.Filename)
	if filename == "" || !AllowedFile(filename) {
		return nil, nil, ErrUnsupportedMedia
	}

	uploadDir := config.GetUploadFolder()
	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		return nil, nil, err
	}
	imagePath := filepath.Join(uploadDir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}
	defer src.Close()

	img, err := classifier.Decode(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	if err := s.save(fileHeader, imagePath); err != nil {
		return nil, nil, err
	}

	prediction := s.model.Classify(classifier.Normalize(img))

	result, err := s.detectionService.Record(username, imagePath, prediction.Label, prediction.Confidence)
	if err != nil {
		// The primary write failed; the stored file is orphaned and
		// picked up by the upload sweep job.
		return nil, nil, err
	}

	logger.Debugf("scan stored for %s: %s (%.2f)", username, prediction.Label, prediction.Confidence)
	return result, &prediction, nil
}

func (s *ScanService) save(fileHeader *multipart.FileHeader, dst string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return err
	}
	return nil
}
