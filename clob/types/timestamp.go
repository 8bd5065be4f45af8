package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// endDateMax stands in for markets that report an empty end date.
var endDateMax = time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)

// Timestamp decodes the timestamp shapes the Polymarket APIs actually emit:
// unix seconds as a JSON number, unix seconds as a quoted string, or an
// RFC3339 string. An empty string maps to the far-future end-date sentinel.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			t.Time = endDateMax
			return nil
		}
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			t.Time = time.Unix(secs, 0).UTC()
			return nil
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		t.Time = parsed.UTC()
		return nil
	}

	var secs float64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	t.Time = time.Unix(int64(secs), 0).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}
