package timefmt

import (
	"testing"
)

func TestHHMM(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{59, "00:00"},
		{60, "00:01"},
		{3599, "00:59"},
		{3600, "01:00"},
		{3661, "01:01"},
		{28800, "08:00"},
		{30600, "08:30"},
		{360000, "100:00"},
	}
	for _, c := range cases {
		got := HHMM(c.seconds)
		if got != c.want {
			t.Errorf("HHMM(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestHHMMTruncatesSeconds(t *testing.T) {
	// Any leftover seconds below a full minute are dropped, never rounded up.
	for _, seconds := range []int64{61, 119, 3659, 28859} {
		got := HHMM(seconds)
		floor := HHMM(seconds - seconds%60)
		if got != floor {
			t.Errorf("HHMM(%d) = %q, want truncated %q", seconds, got, floor)
		}
	}
}
