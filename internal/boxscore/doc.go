// Package boxscore extracts game records and player stat lines from
// basketball-reference box score pages, and box score links from the
// daily schedule pages.
//
// The extractors are pure over their input document: the same page
// always yields the same records. A missing score region, unreadable
// team names, or unreadable final scores abort the page entirely.
// Every other malformed cell degrades to an absent value with a
// logged diagnostic.
package boxscore
