// Package calendar maps Dates to and from civil fields of the proleptic
// Gregorian calendar in a given location.
//
// The date and interval packages never do civil arithmetic; everything that
// depends on months, weekdays or time zones lives here and is computed with
// the time package.
//
// Decompose always succeeds. Compose reports false when the fields do not
// describe exactly one instant in the calendar's location: out-of-range
// fields, days that do not exist in the month, local times skipped by a
// daylight-saving transition, or derived fields (weekday, quarter, week
// numbers, ...) that disagree with the date the other fields name.
package calendar
