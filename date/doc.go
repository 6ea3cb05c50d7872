// Package date provides Date, an instant stored as a count of seconds since
// the reference epoch, 2001-01-01 00:00:00 UTC.
//
// All arithmetic on a Date goes through the interval package: offsets may be
// supplied in any unit and read back in any unit, while the Date itself only
// ever holds interval.Seconds.
//
// Date knows nothing about calendars. Civil fields (year, month, weekday, ...)
// belong to the calendar package; conversion to and from time.Time is the
// only host-specific surface here.
package date
