package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"brme/internal/temporal"
	"brme/pkg/datemath"
)

var requiredFields = []string{"title", "start", "end", "timezone", "location", "notes"}

// ParseDraft extracts the first well-formed JSON object from a model answer and
// maps it onto a DraftEvent. Every field must be present; start and end must be
// valid timestamps.
func ParseDraft(raw string, loc *time.Location) (temporal.DraftEvent, error) {
	obj, ok := firstObject(stripFences(raw))
	if !ok {
		return temporal.DraftEvent{}, errors.Wrap(temporal.ErrMalformedEstimatorOutput, "no JSON object in response")
	}

	values := make(map[string]string, len(requiredFields))
	for _, k := range requiredFields {
		v, present := obj[k]
		if !present {
			return temporal.DraftEvent{}, errors.Wrapf(temporal.ErrMalformedEstimatorOutput, "missing field %q", k)
		}
		values[k] = scalar(v)
	}

	for _, k := range []string{"start", "end"} {
		if _, err := datemath.ParseTimestamp(values[k], loc); err != nil {
			return temporal.DraftEvent{}, fmt.Errorf("%w: %w: %s: %v", temporal.ErrMalformedEstimatorOutput, temporal.ErrInvalidTimestamp, k, err)
		}
	}

	return temporal.DraftEvent{
		Title:    values["title"],
		Start:    values["start"],
		End:      values["end"],
		Timezone: values["timezone"],
		Location: values["location"],
		Notes:    values["notes"],
	}, nil
}

// stripFences returns the body of the first ``` block, or s unchanged.
func stripFences(s string) string {
	open := strings.Index(s, "```")
	if open < 0 {
		return s
	}
	body := s[open+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:] // language tag
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return body
}

// firstObject tries every '{' in order and returns the first one that decodes as a JSON object.
func firstObject(s string) (map[string]json.RawMessage, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}

// scalar renders a JSON value as text: strings unquoted, null as "", anything else verbatim.
func scalar(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if bytes.Equal(v, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
