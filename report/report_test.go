package report

import (
	"testing"
	"time"

	"github.com/Goutham7675/eyecare-ai/condition"
	"github.com/Goutham7675/eyecare-ai/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	result := &model.DetectionResult{
		Id:         7,
		Username:   "admin",
		ImagePath:  "static/uploads/scan.png",
		Prediction: "glaucoma",
		Confidence: 0.88,
		Timestamp:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	buf, err := Render(result, condition.Get(result.Prediction), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, buf)

	data := buf.Bytes()
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderAccuracyRange(t *testing.T) {
	result := &model.DetectionResult{Id: 1, Prediction: "normal"}
	profile := condition.Get(result.Prediction)

	for accuracy := 91.0; accuracy < 95.0; accuracy += 1.7 {
		buf, err := render(result, profile, time.Now(), accuracy)
		require.NoError(t, err)
		assert.NotEmpty(t, buf.Bytes())
	}
}
