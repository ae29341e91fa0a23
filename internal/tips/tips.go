// Package tips rotates short hints about zenith commands on the dashboard.
package tips

import "time"

var all = []string{
	"`zenith done <habit> --day yesterday` to fill in a day you forgot.",
	"`zenith board` to check habits off with the keyboard.",
	"`zenith month` to see this month's heat-map, `zenith month 2024-01` for another.",
	"`zenith suggest --add` to pick a new habit from the coach's ideas.",
	"`zenith guide meditation` for a short guide to getting started.",
	"`zenith notes --append \"...\"` to add a line to your journal.",
	"`zenith show <habit>` to see a habit's longest streak.",
	"`zenith config set display.week_start monday` to start calendar weeks on Monday.",
	"`zenith ai key set` to store a Gemini key for AI suggestions and guides.",
	"`zenith add Stretch --icon fitness` to give a habit its own icon.",
	"Seven days in a row and a habit starts to form. Keep the chain going.",
	"Twenty-one days makes a habit feel automatic.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns the tip for t's calendar day. It changes once a day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
