package service

import (
	"time"

	"github.com/graceware/prayerdeck/pkg/entity"
)

// Pure scheduling policy shared by the database backend and the local
// guest backend. Both must apply these rules bit-for-bit, so nothing
// here touches storage: callers pass already-loaded cards.

// dailySampleSize caps how many daily-frequency cards surface per day.
const dailySampleSize = 3

// DateSeed folds t's calendar date into an 8-digit integer (20250614
// for June 14 2025). Every request on the same local day derives the
// same seed, which keeps the daily sample stable for all users.
func DateSeed(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// ShuffleDaily returns a shuffled copy of cards using a
// linear-congruential sequence seeded from t's date and a bottom-up
// Fisher-Yates pass. The LCG constants (9301, 49297, 233280) and the
// float division are part of the observable contract; do not swap in
// another PRNG.
func ShuffleDaily(cards []*entity.PrayerCardDetails, t time.Time) []*entity.PrayerCardDetails {
	shuffled := make([]*entity.PrayerCardDetails, len(cards))
	copy(shuffled, cards)
	seed := DateSeed(t)
	for i := len(shuffled) - 1; i > 0; i-- {
		seed = (seed*9301 + 49297) % 233280
		j := int(float64(seed) / 233280.0 * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// SampleDaily applies the daily-overflow policy: four or more
// daily-frequency cards are downsampled to exactly three via the
// seeded shuffle, three or fewer pass through untouched in store
// order.
func SampleDaily(cards []*entity.PrayerCardDetails, t time.Time) []*entity.PrayerCardDetails {
	if len(cards) <= dailySampleSize {
		return cards
	}
	return ShuffleDaily(cards, t)[:dailySampleSize]
}

// WeekdayName yields the day-of-week string stored on weekly cards
// ("Monday", ...), in t's location.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// DueWeekly reports whether a weekly card is due as of t.
func DueWeekly(card *entity.PrayerCard, t time.Time) bool {
	return card.Frequency == entity.FrequencyWeekly &&
		card.DayOfWeek != nil && *card.DayOfWeek == WeekdayName(t)
}

// DueMonthly reports whether a monthly card is due as of t. The legacy
// single day and the day set are alternatives; either match suffices.
// Days that a short month never reaches simply never match.
func DueMonthly(card *entity.PrayerCard, t time.Time) bool {
	if card.Frequency != entity.FrequencyMonthly {
		return false
	}
	day := t.Day()
	if card.DayOfMonth != nil && *card.DayOfMonth == day {
		return true
	}
	for _, d := range card.DaysOfMonth {
		if d == day {
			return true
		}
	}
	return false
}

// DayWindow is the half-open [local midnight, next local midnight)
// interval around t. Completion is always tracked at this granularity
// even for weekly and monthly cards.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// PeriodWindow is the frequency-dependent current period around t:
// the local day, the Sunday-anchored week, or the calendar month.
// Unknown frequencies fall back to the daily window. Undo scopes to
// this window; mark stays on DayWindow.
func PeriodWindow(freq entity.Frequency, t time.Time) (time.Time, time.Time) {
	switch freq {
	case entity.FrequencyWeekly:
		start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		start = start.AddDate(0, 0, -int(t.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case entity.FrequencyMonthly:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return start, start.AddDate(0, 1, 0)
	default:
		return DayWindow(t)
	}
}

// LevelFor derives the gamification level from the cumulative
// completion count: one level per seven prayers, never below 1.
func LevelFor(totalPrayers int) int {
	if totalPrayers < 0 {
		totalPrayers = 0
	}
	return totalPrayers/7 + 1
}

// IsLevelUp reports whether a successful mark that brought the total
// to totalPrayers crossed a level boundary worth surfacing.
func IsLevelUp(totalPrayers int) bool {
	return totalPrayers%7 == 1 && totalPrayers > 1
}
