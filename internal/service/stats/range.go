package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Range presets accepted by Dashboard.
const (
	RangeToday  = "today"
	Range7Days  = "7d"
	Range30Days = "30d"
	Range90Days = "90d"
	RangeYTD    = "ytd"
	RangeCustom = "custom"
)

const maxCustomSpan = 5 * 366 * 24 * time.Hour

// RangeInput selects the reporting window. From and To are only used with
// RangeCustom.
type RangeInput struct {
	Range string
	From  *time.Time
	To    *time.Time
}

// window is a resolved reporting window and the equally long one before it.
type window struct {
	key      string
	current  domain.Period
	previous domain.Period
}

// resolveRange turns input into concrete periods relative to now (UTC).
func resolveRange(input RangeInput, defaultRange string, now time.Time) (window, error) {
	now = now.UTC()
	key := strings.ToLower(strings.TrimSpace(input.Range))
	if key == "" {
		key = defaultRange
	}

	var cur domain.Period
	switch key {
	case RangeToday:
		cur = domain.Period{From: startOfDay(now), To: now}
	case Range7Days:
		cur = domain.Period{From: now.AddDate(0, 0, -7), To: now}
	case Range30Days:
		cur = domain.Period{From: now.AddDate(0, 0, -30), To: now}
	case Range90Days:
		cur = domain.Period{From: now.AddDate(0, 0, -90), To: now}
	case RangeYTD:
		cur = domain.Period{From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), To: now}
	case RangeCustom:
		p, err := customPeriod(input)
		if err != nil {
			return window{}, err
		}
		cur = p
		key = fmt.Sprintf("custom:%d:%d", p.From.Unix(), p.To.Unix())
	default:
		return window{}, domain.NewValidationError("range", "unknown range")
	}

	// An empty window (e.g. "today" at midnight) still gets a one-second span
	// so the previous period is well defined.
	if !cur.To.After(cur.From) {
		cur.To = cur.From.Add(time.Second)
	}

	d := cur.Duration()
	return window{
		key:      key,
		current:  cur,
		previous: domain.Period{From: cur.From.Add(-d), To: cur.From},
	}, nil
}

func customPeriod(input RangeInput) (domain.Period, error) {
	var errs domain.FieldErrors
	if input.From == nil {
		errs.Add("from", "required for custom range")
	}
	if input.To == nil {
		errs.Add("to", "required for custom range")
	}
	if err := errs.Err(); err != nil {
		return domain.Period{}, err
	}

	p := domain.Period{From: input.From.UTC(), To: input.To.UTC()}
	switch {
	case !p.To.After(p.From):
		return domain.Period{}, domain.NewValidationError("to", "must be after from")
	case p.Duration() > maxCustomSpan:
		return domain.Period{}, domain.NewValidationError("to", "range too long")
	}
	return p, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
