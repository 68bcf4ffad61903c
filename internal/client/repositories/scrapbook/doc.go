// Package scrapbook persists the ordered scrapbook sequence.
//
// The stored order is the display order. An absent (or undecodable) value
// loads as three seeded example memories; a stored empty list stays empty,
// so a user who deleted every photo does not get the examples back.
package scrapbook
