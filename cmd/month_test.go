package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	y, m, err := parseMonth("2024-02")
	if err != nil || y != 2024 || m != time.February {
		t.Fatalf("parseMonth = %d %v %v", y, m, err)
	}
	for _, bad := range []string{"2024-13", "Feb 2024", "2024"} {
		if _, _, err := parseMonth(bad); err == nil {
			t.Errorf("parseMonth(%q) should fail", bad)
		}
	}
}

func TestRunMonth(t *testing.T) {
	configTestEnv(t)
	addHabit(t, "book", "Read")

	out := captureStdout(t, func() {
		if err := runMonth(nil, []string{"2024-02"}); err != nil {
			t.Errorf("runMonth: %v", err)
		}
	})
	if !strings.Contains(out, "February 2024") {
		t.Fatalf("expected month title, got %q", out)
	}
	if !strings.Contains(out, "29") {
		t.Fatalf("leap February should show the 29th, got %q", out)
	}

	if err := runMonth(nil, []string{"nope"}); err == nil {
		t.Fatal("expected error for bad month")
	}
}

func TestIndentLines(t *testing.T) {
	if got := indentLines("a\n\nb\n"); got != "  a\n\n  b\n" {
		t.Errorf("indentLines = %q", got)
	}
}
