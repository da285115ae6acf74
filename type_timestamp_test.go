package kakeibo

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_JSON(t *testing.T) {
	ts := At(time.Date(2023, 11, 14, 22, 13, 20, 999, time.UTC))

	got, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := "1700000000"; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Timestamp
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("Unmarshal() = %v, want %v", back, ts)
	}
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	for _, input := range []string{`"2023-11-14"`, `1.5`, `true`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(input), &ts); err == nil {
			t.Errorf("Unmarshal(%s) expected error, got %v", input, ts)
		}
	}
}

func TestTimestamp_String(t *testing.T) {
	if got, want := Unix(1700000000).String(), "2023-11-14 22:13:20 UTC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if loc := Unix(1700000000).Time().Location(); loc != time.UTC {
		t.Errorf("Time() location = %v, want UTC", loc)
	}
}
