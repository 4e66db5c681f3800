package tracker

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsableTime is a recoverable user-input error: the pending
// interaction stays alive and the user is re-prompted.
var ErrUnparsableTime = errors.New("unparsable time")

const customDateTimeLayout = "2006-01-02 15:04"

// Resolver turns user time choices into absolute timestamps in the
// reference timezone.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

func NewResolver(loc *time.Location) *Resolver {
	return &Resolver{loc: loc, now: time.Now}
}

func (r *Resolver) Now() time.Time {
	return r.now().In(r.loc)
}

// Offset is always relative to the anchor captured at event-kind selection,
// never to the current time, so a user who takes minutes to answer still
// gets the time they intended.
func (r *Resolver) Offset(base time.Time, minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute).In(r.loc)
}

// ParseCustom interprets free text typed after the Custom option. HH:MM is
// tried first and combined with today's date in the reference timezone;
// then YYYY-MM-DD HH:MM as that exact local date/time. First match wins.
func (r *Resolver) ParseCustom(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if t, ok := r.parseClock(text); ok {
		return t, nil
	}
	if t, err := time.ParseInLocation(customDateTimeLayout, text, r.loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrUnparsableTime
}

func (r *Resolver) parseClock(text string) (time.Time, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return time.Time{}, false
	}
	if len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) == 0 || len(parts[1]) > 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	today := r.now().In(r.loc)
	return time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, r.loc), true
}
