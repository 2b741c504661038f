package errorvalues

import "errors"

var (
	ErrCardNotFound     = errors.New("prayer card doesn't exist")
	ErrCategoryNotFound = errors.New("category doesn't exist")
	ErrRequestNotFound  = errors.New("prayer request doesn't exist")
	ErrLogNotFound      = errors.New("no prayer log to undo")
	// ErrAlreadyPrayed is an outcome, not a failure: marking a card a
	// second time within the same day leaves stats untouched.
	ErrAlreadyPrayed = errors.New("already prayed for this card today")
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSchedule covers recurrence fields that disagree with the
	// chosen frequency (weekly without a weekday, monthly without days).
	ErrInvalidSchedule = errors.New("recurrence fields don't match frequency")
	// ErrTransientStorage marks connection-level hiccups worth a retry
	// on the card creation write path.
	ErrTransientStorage = errors.New("transient storage error")
	ErrNoGuestData      = errors.New("no guest data to transfer")
)
