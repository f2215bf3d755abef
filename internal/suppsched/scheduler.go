// Package suppsched converts a set of selected supplements plus three daily
// anchor times (wake, train, sleep) into concrete times of day, applying
// the fixed per-supplement timing rules and flagging known conflicts such
// as caffeine too close to bedtime.
package suppsched

import (
	"fmt"
	"sort"

	"github.com/rsantiago76/BetterMe-sub000/internal/timeutil"
)

// Display buckets, in emission order. A scheduled time is matched against
// the anchors in priority order morning → training → evening; whatever is
// near none of them lands in Midday.
const (
	groupMorning  = "Morning (Wake Up)"
	groupMidday   = "Midday"
	groupTraining = "Training Window"
	groupEvening  = "Evening (Bedtime)"
)

const (
	morningWindowMinutes  = 60
	trainingWindowMinutes = 90
	eveningWindowMinutes  = 90
)

const noonMinutes = 12 * 60

// anchors holds the user's three reference points in minutes since
// midnight.
type anchors struct {
	wake  int
	train int
	bed   int
}

// BuildSchedule parses the three "HH:MM" anchors and computes the schedule
// for the selected supplement IDs. IDs without a timing rule are silently
// skipped — the behavior existing callers rely on; validate against Rules()
// beforehand if that leniency is unwanted.
func BuildSchedule(schedule UserSchedule) (ScheduleResult, error) {
	wake, err := timeutil.ParseClock(schedule.WakeTime)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("wake_time: %w", err)
	}
	train, err := timeutil.ParseClock(schedule.TrainingTime)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("training_time: %w", err)
	}
	bed, err := timeutil.ParseClock(schedule.BedTime)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("bed_time: %w", err)
	}

	a := anchors{wake: wake, train: train, bed: bed}

	items := make([]ScheduledSupplement, 0, len(schedule.Supplements))
	for _, id := range schedule.Supplements {
		rule, ok := RuleFor(id)
		if !ok {
			continue
		}
		items = append(items, scheduleOne(rule, a))
	}

	sortWraparound(items, a.wake)

	return ScheduleResult{
		Items:  items,
		Groups: groupForDisplay(items, a),
	}, nil
}

// scheduleOne resolves one rule against the anchors: anchor minute plus
// signed offset, normalized into [0, 1440).
func scheduleOne(rule TimingRule, a anchors) ScheduledSupplement {
	minutes := timeutil.Normalize(resolveAnchor(rule.Anchor, a) + rule.OffsetMinutes)

	item := ScheduledSupplement{
		Time:         timeutil.FormatClock(minutes),
		TimeMinutes:  minutes,
		SupplementID: rule.SupplementID,
		Name:         rule.Name,
		WithFood:     rule.WithFood,
		Notes:        rule.Notes,
	}

	if rule.AvoidAfterHour != nil && minutes/60 >= *rule.AvoidAfterHour {
		item.Warning = fmt.Sprintf(
			"%s lands at %s — this late it can disrupt sleep. Consider skipping it or training earlier.",
			rule.Name, item.Time)
	}

	return item
}

func resolveAnchor(anchor Anchor, a anchors) int {
	switch anchor {
	case AnchorWake:
		return a.wake
	case AnchorPreWorkout, AnchorPostWorkout:
		return a.train
	case AnchorWithMeal:
		// Breakfast proxy.
		return a.wake + 30
	case AnchorBedtime:
		return a.bed
	case AnchorMidday:
		return (a.wake + a.bed) / 2
	default:
		return a.wake
	}
}

// sortWraparound orders the schedule starting near the wake anchor. When
// the user wakes after noon, pre-noon times sort as next-day so the display
// doesn't open at literal midnight; the stored TimeMinutes are untouched.
func sortWraparound(items []ScheduledSupplement, wake int) {
	key := func(t int) int {
		if wake > noonMinutes && t < noonMinutes {
			return t + timeutil.MinutesPerDay
		}
		return t
	}
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i].TimeMinutes) < key(items[j].TimeMinutes)
	})
}

// groupForDisplay buckets each item by proximity to the anchors, first
// match wins: wake within 60 minutes, then training within 90, then bedtime
// within 90, else Midday. Groups are emitted Morning → Midday → Training →
// Evening with empty groups omitted.
func groupForDisplay(items []ScheduledSupplement, a anchors) []ScheduleGroup {
	buckets := map[string][]ScheduledSupplement{}
	for _, item := range items {
		label := bucketFor(item.TimeMinutes, a)
		buckets[label] = append(buckets[label], item)
	}

	var out []ScheduleGroup
	for _, label := range []string{groupMorning, groupMidday, groupTraining, groupEvening} {
		if members := buckets[label]; len(members) > 0 {
			out = append(out, ScheduleGroup{Label: label, Items: members})
		}
	}
	return out
}

func bucketFor(minutes int, a anchors) string {
	switch {
	case timeutil.CircularDistance(minutes, a.wake) <= morningWindowMinutes:
		return groupMorning
	case timeutil.CircularDistance(minutes, a.train) <= trainingWindowMinutes:
		return groupTraining
	case timeutil.CircularDistance(minutes, a.bed) <= eveningWindowMinutes:
		return groupEvening
	default:
		return groupMidday
	}
}
