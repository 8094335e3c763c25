package main

import (
	"reflect"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		raw     string
		start   int
		end     int
		wantErr bool
	}{
		{"0-10", 0, 10, false},
		{"5:5", 5, 5, false},
		{" 3 - 7 ", 3, 7, false},
		{"10-5", 0, 0, true},
		{"-1-5", 0, 0, true},
		{"abc", 0, 0, true},
	}
	for _, tt := range tests {
		start, end, err := parseRange(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseRange(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if err == nil && (start != tt.start || end != tt.end) {
			t.Errorf("parseRange(%q) = (%d, %d), want (%d, %d)", tt.raw, start, end, tt.start, tt.end)
		}
	}
}

func TestParseFrameList(t *testing.T) {
	frames, err := parseFrameList("3, 1,8")
	if err != nil {
		t.Fatalf("parseFrameList failed: %v", err)
	}
	if !reflect.DeepEqual(frames, []int{3, 1, 8}) {
		t.Fatalf("parseFrameList = %v", frames)
	}

	if _, err := parseFrameList(" , "); err == nil {
		t.Fatal("expected error for empty list")
	}
	if _, err := parseFrameList("1,-2"); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestParseEpisodeArgs(t *testing.T) {
	dataset, episode, err := parseEpisodeArgs([]string{"pick-place-v2", "12"})
	if err != nil || dataset != "pick-place-v2" || episode != 12 {
		t.Fatalf("parseEpisodeArgs = (%s, %d, %v)", dataset, episode, err)
	}
	if _, _, err := parseEpisodeArgs([]string{"only-one"}); err == nil {
		t.Fatal("expected error for missing episode")
	}
	if _, _, err := parseEpisodeArgs([]string{"d", "-4"}); err == nil {
		t.Fatal("expected error for negative episode")
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := displayLabel("pick_up_block"); got != "Pick Up Block" {
		t.Fatalf("displayLabel = %q", got)
	}
	if got := displayLabel(""); got != "(unlabeled)" {
		t.Fatalf("displayLabel(empty) = %q", got)
	}
}
