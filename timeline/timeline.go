// Package timeline holds the life and career events shown on the about page.
package timeline

import (
	"fmt"
	"time"
)

// Entry is a single event on the timeline. A nil EndDate means the event is
// still ongoing.
type Entry struct {
	Title       string
	Description string
	Place       string
	StartDate   time.Time
	EndDate     *time.Time
}

// Ongoing reports whether the entry has no end date.
func (e Entry) Ongoing() bool {
	return e.EndDate == nil
}

// HasPlace reports whether the entry names a place.
func (e Entry) HasPlace() bool {
	return e.Place != ""
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func until(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

// entries is in presentation order, which is not strictly chronological.
var entries = []Entry{
	{
		Title:       "High School",
		Place:       "SMK Negeri 8 Pandeglang",
		StartDate:   date(2018, time.June, 14),
		EndDate:     until(2021, time.May, 28),
		Description: "Entering High School, it was a pleasant time when I was in High School, learning all of those fundamentals such as logical gate, and I even play around with Java for 2 semesters",
	},
	{
		Title:       "College",
		Place:       "AMIK Serang",
		StartDate:   date(2021, time.October, 16),
		Description: "2021 was a big year for me, I got a scholarship for college, and now Im actively goes to campuss",
	},
	{
		Title:       "Intern Frontend Developer",
		Place:       "Skyshi Digital Indonesia",
		StartDate:   date(2022, time.January, 1),
		EndDate:     until(2022, time.May, 1),
		Description: "I work as a Jr. Frontend Developer at skyshi digital, slicing design website to react component, collaborate with my colleague to build an application based on Next.js App.",
	},
	{
		Title:       "Assitant Computer Lab",
		Place:       "AMIK Serang",
		StartDate:   date(2021, time.November, 1),
		Description: "I started my job as an Assistant Lab at my College, I usually helping my colleague to deal with computers in the lab, and I often to create education contents for my College and posted it on my College's social media account",
	},
	{
		Title:       "Frontend Developer",
		Place:       "Skyshi Digital Indonesia",
		StartDate:   date(2022, time.April, 1),
		Description: "As I'm previously work as an intern, now I'm officially a Frontend Developer at Skyshi Digital Indonesia, I'm working on a project that is based on React.js, and Vue.js, slicing and integrating data from server to the client and optimize app as possible.",
	},
}

// Entries returns a copy of the timeline in presentation order. End dates
// are copied too, so callers cannot alter the package data.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i, e := range out {
		if e.EndDate != nil {
			d := *e.EndDate
			out[i].EndDate = &d
		}
	}
	return out
}

// RangeError describes an entry whose end date precedes its start date.
type RangeError struct {
	Index int
	Entry Entry
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("timeline: entry %d (%q) ends %s before it starts %s",
		e.Index, e.Entry.Title, e.Entry.EndDate.Format(time.DateOnly), e.Entry.StartDate.Format(time.DateOnly))
}

// Validate returns a RangeError for every entry that ends before it starts.
func Validate(list []Entry) []error {
	var errs []error
	for i, e := range list {
		if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
			errs = append(errs, &RangeError{Index: i, Entry: e})
		}
	}
	return errs
}
