package models

import "strings"

// Cell delimiters for the packed visit columns. Dates are comma-joined
// YYYY-MM-DD strings; notes are double-pipe-joined "date:note" entries,
// index-aligned with the dates.
const (
	dateSeparator = ","
	noteSeparator = "||"
)

// Visit is one redeemed visit event.
type Visit struct {
	Date string
	Note string
}

// DecodeVisits unpacks the visitDates and visitNotes cells into an ordered
// visit list. The date cell defines the visit count; the note list is padded
// or truncated to match it, so the two stay index-aligned even when the
// stored cells have drifted.
func DecodeVisits(dates, notes string) []Visit {
	if dates == "" {
		return nil
	}

	dateList := strings.Split(dates, dateSeparator)
	var noteList []string
	if notes != "" {
		noteList = strings.Split(notes, noteSeparator)
	}

	visits := make([]Visit, len(dateList))
	for i, d := range dateList {
		visits[i] = Visit{Date: d}
		if i < len(noteList) {
			visits[i].Note = noteFromEntry(noteList[i])
		}
	}
	return visits
}

// EncodeVisitDates packs the visit dates into the comma-joined cell form.
func EncodeVisitDates(visits []Visit) string {
	dates := make([]string, len(visits))
	for i, v := range visits {
		dates[i] = v.Date
	}
	return strings.Join(dates, dateSeparator)
}

// EncodeVisitNotes packs the visit notes into the double-pipe-joined cell
// form. A visit without a note encodes as an empty entry.
func EncodeVisitNotes(visits []Visit) string {
	entries := make([]string, len(visits))
	for i, v := range visits {
		if v.Note == "" {
			entries[i] = ""
		} else {
			entries[i] = v.Date + ":" + v.Note
		}
	}
	return strings.Join(entries, noteSeparator)
}

// noteFromEntry strips the "date:" prefix from a stored note entry.
func noteFromEntry(entry string) string {
	if idx := strings.Index(entry, ":"); idx >= 0 {
		return entry[idx+1:]
	}
	return ""
}
