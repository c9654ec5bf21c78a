package collector

import (
	"math"

	"github.com/danikagupta/zoomsize/internal/zoom"
)

// Recording is one normalized meeting-recording record. Keys are the
// provider's surviving fields plus MB, user_name and user_email.
type Recording map[string]any

// Collection is the ordered, flattened record set handed to presentation
// and persisted to the disk cache.
type Collection []Recording

const bytesPerMiB = 1 << 20

// excludedFields are stripped from every raw meeting object: bulky nested
// lists, URLs and identifiers that have no place in a storage report.
var excludedFields = []string{
	"recording_files",
	"meetings",
	"play_url",
	"download_url",
	"meeting_id",
	"id",
	"uuid",
	"share_url",
	"recording_play_passcode",
	"account_id",
	"recording_code",
	"timezone",
	"type",
	"total_size",
}

// Normalize trims a raw meeting object to the stable field set and
// attributes it to its owning user. The byte count is replaced by MB,
// rounded half away from zero to the nearest whole mebibyte.
func Normalize(raw map[string]any, user zoom.UserSummary) Recording {
	rec := make(Recording, len(raw)+3)
	for k, v := range raw {
		rec[k] = v
	}

	var size float64
	if v, ok := rec["total_size"].(float64); ok {
		size = v
	}
	rec["MB"] = int(math.Round(size / bytesPerMiB))
	rec["user_name"] = user.UserName
	rec["user_email"] = user.Email

	for _, k := range excludedFields {
		delete(rec, k)
	}

	return rec
}
