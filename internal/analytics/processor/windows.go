package processor

import (
	"strings"
	"time"

	"marketplace-server/internal/store"
)

const isoDateFormat = "2006-01-02"

// DayPoint carries the counters of one calendar day of the current window
// plus the counters of the same offset in the previous window.
type DayPoint struct {
	Day          string `json:"day"`
	Date         string `json:"date"`
	Share        int    `json:"share"`
	Call         int    `json:"call"`
	Whatsapp     int    `json:"whatsapp"`
	Profile      int    `json:"profile"`
	Enquire      int    `json:"enquire"`
	PrevShare    int    `json:"prevShare"`
	PrevCall     int    `json:"prevCall"`
	PrevWhatsapp int    `json:"prevWhatsapp"`
	PrevProfile  int    `json:"prevProfile"`
	PrevEnquire  int    `json:"prevEnquire"`
}

// DayTotals is the flat single-day roll-up.
type DayTotals struct {
	Share    int `json:"share"`
	Whatsapp int `json:"whatsapp"`
	Call     int `json:"call"`
	Profile  int `json:"profile"`
	Enquire  int `json:"enquire"`
}

// window describes a current aggregation range and the preceding range it
// is compared against. Offsets beyond prevLength have no comparable day.
type window struct {
	start      time.Time
	length     int
	prevStart  time.Time
	prevLength int
}

// truncateDay drops the time-of-day component, keeping the UTC calendar date.
func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayLabel returns the lowercase abbreviated weekday name, e.g. "mon".
func dayLabel(t time.Time) string {
	return strings.ToLower(t.Format("Mon"))
}

// weekWindow covers the 7 days starting at anchor, compared against the
// 7 days immediately before it.
func weekWindow(anchor time.Time) window {
	start := truncateDay(anchor)
	return window{
		start:      start,
		length:     7,
		prevStart:  start.AddDate(0, 0, -7),
		prevLength: 7,
	}
}

// monthWindow covers the calendar month containing anchor, compared against
// the full prior calendar month. Lengths differ across month boundaries.
func monthWindow(anchor time.Time) window {
	anchor = anchor.UTC()
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := start.AddDate(0, -1, 0)
	return window{
		start:      start,
		length:     daysInMonth(start),
		prevStart:  prevStart,
		prevLength: daysInMonth(prevStart),
	}
}

// daysInMonth returns the number of days of the month containing t.
func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// sumBucketsByDay collapses buckets into per-day totals across all products.
func sumBucketsByDay(buckets []store.ClickBucket) map[string]DayTotals {
	totals := make(map[string]DayTotals, len(buckets))
	for _, b := range buckets {
		key := b.Day.UTC().Format(isoDateFormat)
		t := totals[key]
		t.Share += b.ShareClick
		t.Whatsapp += b.WhatsappClick
		t.Call += b.CallClick
		t.Profile += b.ProfileClick
		t.Enquire += b.EnquireClick
		totals[key] = t
	}
	return totals
}

// buildDayPoints produces one DayPoint per offset of the window, pairing
// each current day with the same offset in the previous range. Days with
// no buckets contribute zeros. Offsets past the previous range's length
// get all-zero prev fields rather than wrapping into another month.
func buildDayPoints(w window, totals map[string]DayTotals) []DayPoint {
	points := make([]DayPoint, 0, w.length)
	for i := 0; i < w.length; i++ {
		day := w.start.AddDate(0, 0, i)
		current := totals[day.Format(isoDateFormat)]

		var prev DayTotals
		if i < w.prevLength {
			prev = totals[w.prevStart.AddDate(0, 0, i).Format(isoDateFormat)]
		}

		points = append(points, DayPoint{
			Day:          dayLabel(day),
			Date:         day.Format(isoDateFormat),
			Share:        current.Share,
			Call:         current.Call,
			Whatsapp:     current.Whatsapp,
			Profile:      current.Profile,
			Enquire:      current.Enquire,
			PrevShare:    prev.Share,
			PrevCall:     prev.Call,
			PrevWhatsapp: prev.Whatsapp,
			PrevProfile:  prev.Profile,
			PrevEnquire:  prev.Enquire,
		})
	}
	return points
}
