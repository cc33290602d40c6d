// Package util holds small helpers that don't belong elsewhere.
package util

import (
	"net/url"
	"strings"
)

// RemoveProtocolFromURL strips the scheme from a URL, keeping host,
// port and path.
//
//	RemoveProtocolFromURL("https://www.example.com") // "www.example.com"
//	RemoveProtocolFromURL("http://localhost:4566")   // "localhost:4566"
func RemoveProtocolFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = ""
	return strings.TrimPrefix(u.String(), "//")
}

// EnsureList normalizes an optional string value to a slice: no value
// or a single empty string becomes an empty slice, anything else is
// returned as-is.
func EnsureList(items ...string) []string {
	if len(items) == 0 || (len(items) == 1 && items[0] == "") {
		return []string{}
	}
	return items
}
