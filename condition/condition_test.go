package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKnownLabels(t *testing.T) {
	for _, label := range []string{"cataract", "DR", "glaucoma", "normal"} {
		p := Get(label)
		assert.NotEmpty(t, p.Summary, label)
		assert.NotEmpty(t, p.Description, label)
		assert.NotEmpty(t, p.Symptoms, label)
		assert.NotEmpty(t, p.Recommendations, label)
		assert.NotEmpty(t, p.Diet, label)
	}
}

func TestGetUnknownLabelFallsBack(t *testing.T) {
	p := Get("astigmatism")
	assert.Equal(t, Get("default"), p)
	assert.Contains(t, p.Description, "consult")
}

func TestSummary(t *testing.T) {
	assert.Contains(t, Summary("DR"), "Diabetic Retinopathy")
	assert.Equal(t, Get("default").Summary, Summary("unknown"))
}
