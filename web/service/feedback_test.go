package service

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Goutham7675/eyecare-ai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackAdd(t *testing.T) {
	setupTest(t)
	audit := AuditService{}
	audit.Init()
	service := FeedbackService{}

	feedback, err := service.Add("admin", "very helpful")
	assert.NoError(t, err)
	assert.NotZero(t, feedback.Id)

	_, err = service.Add("admin", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	// The CSV mirror picked up the entry behind the header row.
	rows := readCSV(t, filepath.Join(config.GetDataFolder(), "feedback.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"id", "username", "message", "timestamp"}, rows[0])
	assert.Equal(t, "admin", rows[1][1])
	assert.Equal(t, "very helpful", rows[1][2])
}

func TestContactAdd(t *testing.T) {
	setupTest(t)
	service := ContactService{}

	contact, err := service.Add("Carol", "carol@example.com", "Question", "How accurate is this?")
	assert.NoError(t, err)
	assert.NotZero(t, contact.Id)

	_, err = service.Add("Carol", "", "Question", "message")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuditMirrorsAreBestEffort(t *testing.T) {
	setupTest(t)
	// Point the mirrors at an unwritable location; primary writes must
	// still succeed.
	t.Setenv("EYECARE_DATA_FOLDER", filepath.Join(t.TempDir(), "missing", "deeper"))

	service := FeedbackService{}
	feedback, err := service.Add("admin", "still works")
	assert.NoError(t, err)
	assert.NotZero(t, feedback.Id)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}
