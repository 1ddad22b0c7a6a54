package service

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/Goutham7675/eyecare-ai/classifier"
	"github.com/Goutham7675/eyecare-ai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"scan.png", true},
		{"scan.jpg", true},
		{"scan.jpeg", true},
		{"PHOTO.JPG", true},
		{"Scan.PnG", true},
		{"photo.gif", false},
		{"photo.bmp", false},
		{"archive.tar.gz", false},
		{"noextension", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.allowed, AllowedFile(tc.filename))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"scan.png", "scan.png"},
		{"dir/scan.png", "scan.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{"..", ""},
		{".", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestProcess(t *testing.T) {
	setupTest(t)
	service := NewScanService(classifier.NewStub())

	result, prediction, err := service.Process(pngUpload(t, "retina.png"), "admin")
	assert.NoError(t, err)
	assert.NotZero(t, result.Id)
	assert.Contains(t, classifier.Labels, result.Prediction)
	assert.Equal(t, prediction.Label, result.Prediction)
	assert.Equal(t, prediction.Confidence, result.Confidence)

	// The image lands in the public upload folder under its sanitized name.
	_, err = os.Stat(filepath.Join(config.GetUploadFolder(), "retina.png"))
	assert.NoError(t, err)

	// And the ledger round-trips it.
	detection := DetectionService{}
	got, err := detection.Get(result.Id)
	assert.NoError(t, err)
	assert.Equal(t, result.Prediction, got.Prediction)
}

func TestProcessRejectsBadExtension(t *testing.T) {
	setupTest(t)
	service := NewScanService(classifier.NewStub())

	_, _, err := service.Process(pngUpload(t, "retina.gif"), "admin")
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestProcessRejectsUndecodableImage(t *testing.T) {
	setupTest(t)
	service := NewScanService(classifier.NewStub())

	_, _, err := service.Process(rawUpload(t, "retina.png", []byte("not an image")), "admin")
	assert.ErrorIs(t, err, ErrImageProcessing)

	// Nothing was stored for the failed upload.
	_, err = os.Stat(filepath.Join(config.GetUploadFolder(), "retina.png"))
	assert.True(t, os.IsNotExist(err))
}

// pngUpload builds a multipart file header carrying a small encoded PNG.
func pngUpload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewNRGBA(image.Rect(0, 0, 16, 16))))
	return rawUpload(t, filename, img.Bytes())
}

func rawUpload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}
