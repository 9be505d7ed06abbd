package manifest

import (
	"fmt"
	"strings"
	"time"

	"github.com/conn-castle/swinst/internal/messages"
)

const (
	asOfDateLayout = "2006-01-02"
	asOfTimeLayout = "15:04:05"
)

// AsOf builds a resolution cutoff from a YYYY-MM-DD date and an HH:MM:SS time.
// Both empty means no cutoff (zero time). A missing half is taken from now's
// local wall clock. Manifest timestamps carry no zone, so the cutoff is built
// on the same naive UTC clock the decoders use.
func AsOf(date string, clock string, now time.Time) (time.Time, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" && clock == "" {
		return time.Time{}, nil
	}
	local := now.Local()
	year, month, day := local.Date()
	hour, minute, second := local.Clock()
	if date != "" {
		d, err := time.Parse(asOfDateLayout, date)
		if err != nil {
			return time.Time{}, fmt.Errorf(messages.AsOfBadDateFmt, date)
		}
		year, month, day = d.Date()
	}
	if clock != "" {
		c, err := time.Parse(asOfTimeLayout, clock)
		if err != nil {
			return time.Time{}, fmt.Errorf(messages.AsOfBadTimeFmt, clock)
		}
		hour, minute, second = c.Clock()
	}
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}
