package cmd

import (
	"strings"

	"github.com/rnwolfe/zenith/internal/daykey"
	"github.com/spf13/pflag"
)

// dayFlag is a --day value: a YYYY-MM-DD date, or "today" / "yesterday".
// Relative names are resolved when the command runs.
type dayFlag struct {
	raw string
	day daykey.Day
}

var _ pflag.Value = (*dayFlag)(nil)

func (f *dayFlag) String() string { return f.raw }

func (f *dayFlag) Type() string { return "date" }

func (f *dayFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "today", "yesterday":
		f.raw, f.day = s, ""
		return nil
	}
	d, err := daykey.Parse(s)
	if err != nil {
		return err
	}
	f.raw, f.day = s, d
	return nil
}

// Resolve returns the chosen day relative to today.
func (f *dayFlag) Resolve(today daykey.Day) daykey.Day {
	switch f.raw {
	case "", "today":
		return today
	case "yesterday":
		return daykey.Before(today)
	}
	return f.day
}
