package utils

import "time"

// TimestampToTime converts epoch seconds to a UTC time.
// It is the exact inverse of [TimeToTimestamp] for whole seconds.
func TimestampToTime(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

// TimeToTimestamp converts t to epoch seconds. Sub-second precision is
// truncated.
func TimeToTimestamp(t time.Time) int64 {
	return t.Unix()
}

// TimestampPtrToTime converts an optional timestamp. Nil stays nil.
func TimestampPtrToTime(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := TimestampToTime(*ts)
	return &t
}

// TimePtrToTimestamp converts an optional time. Nil stays nil.
func TimePtrToTimestamp(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := TimeToTimestamp(*t)
	return &ts
}
