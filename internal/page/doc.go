// Package page wraps a parsed HTML document behind a small query
// interface so the extraction packages do not depend on a specific
// parser API. The implementation is backed by goquery.
package page
