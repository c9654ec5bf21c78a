package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danikagupta/zoomsize/internal/collector"
)

func sampleCollection() collector.Collection {
	return collector.Collection{
		{"user_name": "Lena", "user_email": "lena@example.com", "topic": "standup", "start_time": "2026-08-20T10:00:00Z", "duration": 45, "MB": 512},
		{"user_name": "Lee", "user_email": "lee@example.com", "topic": "retro", "start_time": "2026-08-21T10:00:00Z", "duration": 60, "MB": 512},
		{"user_name": "Lena", "user_email": "lena@example.com", "topic": "planning", "start_time": "2026-08-22T10:00:00Z", "duration": 30, "MB": 1024},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleCollection())

	assert.Equal(t, 3, s.TotalRecordings)
	assert.InDelta(t, 2.0, s.TotalGB, 0.001) // 2048 MB

	require.Len(t, s.PerUser, 2)
	// Sorted by user name.
	assert.Equal(t, UserTotal{UserName: "Lee", MB: 512}, s.PerUser[0])
	assert.Equal(t, UserTotal{UserName: "Lena", MB: 1536}, s.PerUser[1])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalRecordings)
	assert.Zero(t, s.TotalGB)
	assert.Empty(t, s.PerUser)
}

func TestSummarize_MBFromCache(t *testing.T) {
	// MB values read back from the CSV cache may arrive as int or float.
	col := collector.Collection{
		{"user_name": "Lena", "MB": int(100)},
		{"user_name": "Lena", "MB": float64(28)},
	}
	s := Summarize(col)
	require.Len(t, s.PerUser, 1)
	assert.Equal(t, float64(128), s.PerUser[0].MB)
}

func TestDetailRows(t *testing.T) {
	rows := DetailRows(sampleCollection()[:1])
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Lena", "lena@example.com", "standup", "2026-08-20T10:00:00Z", "45", "512"}, rows[0])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleCollection()))

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Total recordings: 3, total size: 2.0 GB")
	assert.Contains(t, out, "Lena")
	assert.Contains(t, out, "1536 MB")
	assert.Contains(t, out, "Details")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "user_email")
}
