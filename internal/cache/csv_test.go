package cache

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danikagupta/zoomsize/internal/collector"
)

func TestWriteCSV_ColumnOrder(t *testing.T) {
	col := collector.Collection{
		{
			"user_name":  "Lena",
			"user_email": "lena@example.com",
			"topic":      "standup",
			"start_time": "2026-08-20T10:00:00Z",
			"duration":   45,
			"MB":         5,
			"host_id":    "h1",
			"agenda":     "notes",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, col))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	// Display columns first, remaining fields sorted.
	assert.Equal(t, "user_name,user_email,topic,start_time,duration,MB,agenda,host_id", lines[0])
	assert.Equal(t, "Lena,lena@example.com,standup,2026-08-20T10:00:00Z,45,5,notes,h1", lines[1])
}

func TestCSV_RoundTrip(t *testing.T) {
	col := collector.Collection{
		{
			"user_name":  "Lena",
			"user_email": "lena@example.com",
			"topic":      "a topic, with commas",
			"duration":   45,
			"MB":         5,
		},
		{
			"user_name":  "Lee",
			"user_email": "lee@example.com",
			"topic":      "",
			"duration":   90,
			"MB":         123,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, col))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Lena", got[0]["user_name"])
	assert.Equal(t, "a topic, with commas", got[0]["topic"])
	assert.Equal(t, 5, got[0]["MB"])
	assert.Equal(t, 45, got[0]["duration"])
	assert.Equal(t, "", got[1]["topic"])
	assert.Equal(t, 123, got[1]["MB"])
}

func TestWriteCSV_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "user_name,user_email,topic,start_time,duration,MB", lines[0])
}

func TestReadCSV_EmptyInput(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseCell(t *testing.T) {
	assert.Equal(t, "", parseCell(""))
	assert.Equal(t, 45, parseCell("45"))
	assert.Equal(t, 1.5, parseCell("1.5"))
	assert.Equal(t, true, parseCell("true"))
	assert.Equal(t, "standup", parseCell("standup"))
}
