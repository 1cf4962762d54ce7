// Package calendar provides a calendar date type without a time component
// and the date arithmetic used by holiday rules: nth weekday of a month,
// nearest weekday and the date of Easter Sunday.
//
// As in the time package, all calculations assume a proleptic Gregorian
// calendar.
package calendar
