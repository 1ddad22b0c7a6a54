package classifier

import (
	"bytes"
	"image"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubClassify(t *testing.T) {
	stub := NewStubWithSource(rand.NewSource(1))
	img := image.NewNRGBA(image.Rect(0, 0, NormalizedWidth, NormalizedHeight))

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		p := stub.Classify(img)
		assert.Contains(t, Labels, p.Label)
		assert.GreaterOrEqual(t, p.Confidence, 0.70)
		assert.Less(t, p.Confidence, 0.95)
		assert.GreaterOrEqual(t, p.DisplayAccuracy, 91.0)
		assert.Less(t, p.DisplayAccuracy, 95.0)
		seen[p.Label] = true
	}

	// 500 uniform draws over 4 classes hit every class.
	assert.Len(t, seen, len(Labels))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"smaller than target", 64, 48},
		{"larger than target", 1024, 768},
		{"already normalized", 300, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Normalize(image.NewNRGBA(image.Rect(0, 0, tc.w, tc.h)))
			assert.Equal(t, NormalizedWidth, out.Bounds().Dx())
			assert.Equal(t, NormalizedHeight, out.Bounds().Dy())
		})
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8))))

	img, err := Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	_, err = Decode(bytes.NewReader([]byte("garbage")))
	assert.Error(t, err)
}
