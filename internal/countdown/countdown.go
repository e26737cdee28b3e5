package countdown

import (
	"fmt"
	"strings"
	"time"
)

// Clock abstracts the current instant so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

// EventState classifies an event date relative to today.
type EventState string

const (
	StateUpcoming EventState = "upcoming"
	StateToday    EventState = "today"
	StateExpired  EventState = "expired"
)

// Breakdown decomposes a time delta into whole days/hours/minutes/seconds.
// The four fields always reconstruct the exact whole-second difference:
// days*86400 + hours*3600 + minutes*60 + seconds.
type Breakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Calculator derives temporal facts from an event's ISO date string and the
// injected clock. All methods are pure readers and never return errors:
// unparseable input degrades to a safe default so a countdown display can
// never crash on bad data.
type Calculator struct {
	clock Clock
}

// New creates a Calculator on the given clock.
func New(clock Clock) *Calculator {
	return &Calculator{clock: clock}
}

// NewSystem creates a Calculator on the wall clock.
func NewSystem() *Calculator {
	return New(SystemClock())
}

// Accepted ISO-8601 layouts. Layouts without a zone are interpreted in the
// local location, matching what a browser date input produces.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 date or datetime string.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date: %q", s)
}

// IsValidDate reports whether s parses to a real calendar date.
func (c *Calculator) IsValidDate(s string) bool {
	_, err := ParseISO(s)
	return err == nil
}

// IsFutureDate reports whether s is strictly after now. Invalid input is
// never a future date.
func (c *Calculator) IsFutureDate(s string) bool {
	t, err := ParseISO(s)
	if err != nil {
		return false
	}
	return t.After(c.clock.Now())
}

// IsExpired reports whether s is strictly before now. Invalid input counts
// as expired.
func (c *Calculator) IsExpired(s string) bool {
	t, err := ParseISO(s)
	if err != nil {
		return true
	}
	return t.Before(c.clock.Now())
}

// DaysUntil returns the whole days between now and s, floored at zero.
// Invalid input yields zero.
func (c *Calculator) DaysUntil(s string) int {
	t, err := ParseISO(s)
	if err != nil {
		return 0
	}
	delta := t.Sub(c.clock.Now())
	if delta <= 0 {
		return 0
	}
	return int(delta / (24 * time.Hour))
}

// Until returns the breakdown of the remaining time until s. A target not
// strictly in the future, or an unparseable one, yields all zeros.
//
// The fields come from successive truncating subtraction of the total
// whole-second difference, so they are internally consistent: hours 0-23,
// minutes and seconds 0-59, days unbounded.
func (c *Calculator) Until(s string) Breakdown {
	t, err := ParseISO(s)
	if err != nil {
		return Breakdown{}
	}
	now := c.clock.Now()
	if !t.After(now) {
		return Breakdown{}
	}

	total := int64(t.Sub(now) / time.Second)
	return Breakdown{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// Classify returns today when the target's calendar date equals today's
// (regardless of time of day), otherwise upcoming or expired. Invalid input
// classifies as expired.
func (c *Calculator) Classify(s string) EventState {
	t, err := ParseISO(s)
	if err != nil {
		return StateExpired
	}
	now := c.clock.Now()

	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return StateToday
	}
	if t.After(now) {
		return StateUpcoming
	}
	return StateExpired
}

// RelativeText renders a short human label for the remaining time.
func (c *Calculator) RelativeText(s string) string {
	if c.IsExpired(s) {
		return "Expirado"
	}
	switch days := c.DaysUntil(s); days {
	case 0:
		return "Hoje!"
	case 1:
		return "Amanhã"
	default:
		return fmt.Sprintf("Em %d dias", days)
	}
}

// FormatDate renders s as dd/MM/yyyy, or "Data inválida" when unparseable.
func FormatDate(s string) string {
	t, err := ParseISO(s)
	if err != nil {
		return "Data inválida"
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders s as dd/MM/yyyy HH:mm, or "Data inválida" when
// unparseable.
func FormatDateTime(s string) string {
	t, err := ParseISO(s)
	if err != nil {
		return "Data inválida"
	}
	return t.Format("02/01/2006 15:04")
}

// FormatBreakdown renders a breakdown as "2d 3h 4m 5s", eliding leading
// zero units down to bare seconds.
func FormatBreakdown(b Breakdown) string {
	var sb strings.Builder
	switch {
	case b.Days > 0:
		fmt.Fprintf(&sb, "%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
	case b.Hours > 0:
		fmt.Fprintf(&sb, "%dh %dm %ds", b.Hours, b.Minutes, b.Seconds)
	case b.Minutes > 0:
		fmt.Fprintf(&sb, "%dm %ds", b.Minutes, b.Seconds)
	default:
		fmt.Fprintf(&sb, "%ds", b.Seconds)
	}
	return sb.String()
}
