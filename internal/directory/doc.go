// Package directory holds the filter/search/sort core of the doctor
// directory: the query-param codec, URL synchronization, the name suggester
// and the filter/sort pipeline. Everything here is pure and safe to call from
// any goroutine as long as callers do not share a URLSync.
package directory
