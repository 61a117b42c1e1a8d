package schema

import "time"

// filetimeEpochOffset is the number of 100ns intervals between 1601-01-01
// and the Unix epoch.
const filetimeEpochOffset = 116444736000000000

// FileTimes is the timestamp triple of a file in FILETIME units (100ns
// intervals since 1601-01-01 UTC), as read and written by GetFileTime and
// SetFileTime.
type FileTimes struct {
	Creation   int64
	LastAccess int64
	LastWrite  int64
}

const ticksPerSecond = 10_000_000

// TimeToFiletime converts a [time.Time] into FILETIME units. Precision below
// 100ns is truncated.
func TimeToFiletime(t time.Time) int64 {
	return t.Unix()*ticksPerSecond + int64(t.Nanosecond())/100 + filetimeEpochOffset //nolint:mnd
}

// FiletimeToTime converts FILETIME units into a UTC [time.Time].
func FiletimeToTime(ft int64) time.Time {
	ticks := ft - filetimeEpochOffset

	return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100).UTC() //nolint:mnd
}
