// Package awardscan extracts nomination and award records from the
// semi-structured HTML pages describing an annual awards ceremony and
// answers analytical queries over them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, sqlite/, http/),
// and the line-oriented extraction engine lives in markup/.
package awardscan
