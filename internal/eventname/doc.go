// Package eventname extracts structured metadata from raw gallery folder
// names such as "Uskrsnji turnir - Secanj, 06.04.2007".
//
// Parse is a pure, total function: a folder name without a recognisable date
// simply yields an empty Date/DateRange and a zero Month. Event type,
// category and month-name detection are driven by ordered rule tables so the
// precedence of each keyword can be tested on its own.
package eventname
