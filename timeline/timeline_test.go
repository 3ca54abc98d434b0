package timeline

import (
	"testing"
	"time"
)

func TestEntriesHaveValidRanges(t *testing.T) {
	if errs := Validate(Entries()); len(errs) != 0 {
		t.Fatalf("expected no range errors, got %v", errs)
	}
}

func TestHighSchoolEntry(t *testing.T) {
	var found bool
	for _, e := range Entries() {
		if e.Title != "High School" {
			continue
		}
		found = true
		if got := e.StartDate.Format(time.DateOnly); got != "2018-06-14" {
			t.Errorf("StartDate = %s, want 2018-06-14", got)
		}
		if e.EndDate == nil {
			t.Fatal("EndDate should be set")
		}
		if got := e.EndDate.Format(time.DateOnly); got != "2021-05-28" {
			t.Errorf("EndDate = %s, want 2021-05-28", got)
		}
	}
	if !found {
		t.Fatal("High School entry missing")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	list := Entries()
	list[0].Title = "changed"
	if Entries()[0].Title == "changed" {
		t.Error("Entries should not expose the underlying slice")
	}
}

func TestEntriesCopiesEndDates(t *testing.T) {
	list := Entries()
	if list[0].EndDate == nil {
		t.Fatal("first entry should have an end date")
	}
	*list[0].EndDate = date(1990, time.January, 1)

	if errs := Validate(Entries()); len(errs) != 0 {
		t.Fatalf("mutating a returned end date changed the timeline: %v", errs)
	}
	if got := Entries()[0].EndDate.Format(time.DateOnly); got != "2021-05-28" {
		t.Errorf("EndDate = %s, want 2021-05-28", got)
	}
}

func TestInternEndDate(t *testing.T) {
	for _, e := range Entries() {
		if e.Title != "Intern Frontend Developer" {
			continue
		}
		if e.EndDate == nil {
			t.Fatal("EndDate should be set")
		}
		if got := e.EndDate.Format(time.DateOnly); got != "2022-05-01" {
			t.Errorf("EndDate = %s, want 2022-05-01", got)
		}
		return
	}
	t.Fatal("intern entry missing")
}

func TestValidateReportsInvertedRange(t *testing.T) {
	end := date(2020, time.January, 1)
	list := []Entry{
		{Title: "ok", StartDate: date(2019, time.January, 1), EndDate: &end},
		{Title: "ongoing", StartDate: date(2021, time.January, 1)},
		{Title: "bad", StartDate: date(2021, time.January, 1), EndDate: &end},
	}
	errs := Validate(list)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	re, ok := errs[0].(*RangeError)
	if !ok {
		t.Fatalf("expected *RangeError, got %T", errs[0])
	}
	if re.Index != 2 || re.Entry.Title != "bad" {
		t.Errorf("unexpected error entry: %+v", re)
	}
}

func TestOngoing(t *testing.T) {
	ongoing := 0
	for _, e := range Entries() {
		if e.Ongoing() {
			ongoing++
		}
	}
	if ongoing != 3 {
		t.Errorf("ongoing entries = %d, want 3", ongoing)
	}
}
