// Package timezone pins every calendar computation of the service to one location.
//
// The location comes from APP_TIMEZONE (an IANA name such as "UTC" or "Asia/Jakarta") and is
// resolved once when the package is imported. Booking dates are calendar dates, so they are parsed
// with ParseDate and compared at midnight in that location:
//
//	checkIn, err := timezone.ParseDate("2024-01-10")
//	today := timezone.Today()
package timezone
