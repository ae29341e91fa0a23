package cmd

import "testing"

func TestDayFlag(t *testing.T) {
	const today = "2024-03-01"
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: today},
		{in: "today", want: today},
		{in: "Yesterday", want: "2024-02-29"},
		{in: "2024-01-15", want: "2024-01-15"},
		{in: "2024-13-01", wantErr: true},
		{in: "last week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f dayFlag
			err := f.Set(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q): %v", tt.in, err)
			}
			if got := f.Resolve(today); string(got) != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayFlag_ZeroValueIsToday(t *testing.T) {
	var f dayFlag
	if f.Type() != "date" {
		t.Errorf("Type = %q", f.Type())
	}
	if got := f.Resolve("2024-05-05"); got != "2024-05-05" {
		t.Errorf("Resolve = %q", got)
	}
}
