// Package timeline groups dated notes into the year, month and half-month
// buckets shown in the archive and on its navigation rail.
package timeline

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"whiteboard/internal/note"
)

var ErrNegativeThreshold = errors.New("threshold must not be negative")

type Kind string

const (
	KindYear      Kind = "year"
	KindMonth     Kind = "month"
	KindHalfMonth Kind = "half-month"
)

// Bucket is one entry of the timeline. Year buckets only separate months
// and never own notes, so their Count is always 0.
type Bucket struct {
	Kind      Kind   `json:"kind"`
	Label     string `json:"label"`
	PeriodKey string `json:"period_key"`
	Count     int    `json:"count"`
}

// Result is one bucketing pass. Assignment maps note id to PeriodKey.
// Results may be shared through Cache and must be treated as read-only.
type Result struct {
	Buckets    []Bucket          `json:"buckets"`
	Assignment map[string]string `json:"assignment"`
}

type Options struct {
	// Threshold is the largest note count a month may hold and still be
	// shown as a single bucket.
	Threshold int
	// SplitHalves enables half-month buckets for months above Threshold.
	SplitHalves bool
}

func DefaultOptions() Options {
	return Options{Threshold: 2, SplitHalves: true}
}

type month struct {
	year  int
	month time.Month
	// days holds the day of month of each note, in input order.
	days []int
}

func monthKey(y int, m time.Month) string {
	return fmt.Sprintf("%s %d", m, y)
}

func firstHalfKey(y int, m time.Month) string {
	return fmt.Sprintf("%s 1-15, %d", m, y)
}

func secondHalfKey(y int, m time.Month) string {
	return fmt.Sprintf("%s 16-31, %d", m, y)
}

// Build buckets notes by year, month and, for busy months, half-month.
// Buckets come out newest year first, months newest first within a year,
// and a split month's 1-15 half before its 16-31 half. Input order is kept
// among notes that share a bucket.
func Build(notes []note.Note, opts Options) (Result, error) {
	if opts.Threshold < 0 {
		return Result{}, ErrNegativeThreshold
	}

	dates := make([]time.Time, len(notes))
	months := map[string]*month{}
	var years []int
	seenYear := map[int]bool{}

	for i, n := range notes {
		d, err := note.ParseDate(n.Date)
		if err != nil {
			return Result{}, fmt.Errorf("note %s: %w", n.ID, err)
		}
		dates[i] = d

		k := monthKey(d.Year(), d.Month())
		m, ok := months[k]
		if !ok {
			m = &month{year: d.Year(), month: d.Month()}
			months[k] = m
		}
		m.days = append(m.days, d.Day())

		if !seenYear[d.Year()] {
			seenYear[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	byYear := map[int][]*month{}
	for _, m := range months {
		byYear[m.year] = append(byYear[m.year], m)
	}

	res := Result{
		Buckets:    []Bucket{},
		Assignment: make(map[string]string, len(notes)),
	}
	split := map[string]bool{}
	emitted := map[string]bool{}

	for _, y := range years {
		ys := strconv.Itoa(y)
		res.Buckets = append(res.Buckets, Bucket{Kind: KindYear, Label: ys, PeriodKey: ys})

		ms := byYear[y]
		sort.Slice(ms, func(i, j int) bool { return ms[i].month > ms[j].month })

		for _, m := range ms {
			name := m.month.String()
			if !opts.SplitHalves || len(m.days) <= opts.Threshold {
				k := monthKey(y, m.month)
				res.Buckets = append(res.Buckets, Bucket{Kind: KindMonth, Label: name, PeriodKey: k, Count: len(m.days)})
				emitted[k] = true
				continue
			}

			split[monthKey(y, m.month)] = true
			first, second := 0, 0
			for _, d := range m.days {
				if d <= 15 {
					first++
				} else {
					second++
				}
			}
			if first > 0 {
				k := firstHalfKey(y, m.month)
				res.Buckets = append(res.Buckets, Bucket{Kind: KindHalfMonth, Label: name + " (1-15)", PeriodKey: k, Count: first})
				emitted[k] = true
			}
			if second > 0 {
				k := secondHalfKey(y, m.month)
				res.Buckets = append(res.Buckets, Bucket{Kind: KindHalfMonth, Label: name + " (16-31)", PeriodKey: k, Count: second})
				emitted[k] = true
			}
		}
	}

	for i, n := range notes {
		d := dates[i]
		k := monthKey(d.Year(), d.Month())
		if split[k] {
			if d.Day() <= 15 {
				k = firstHalfKey(d.Year(), d.Month())
			} else {
				k = secondHalfKey(d.Year(), d.Month())
			}
		}
		if !emitted[k] {
			fallback := monthKey(d.Year(), d.Month())
			log.Printf("timeline: note %s (%q) matched no bucket %q, using %q\n", n.ID, n.Date, k, fallback)
			k = fallback
		}
		res.Assignment[n.ID] = k
	}

	return res, nil
}

// Lookup finds the bucket a rail marker or section anchor points at.
func (r Result) Lookup(periodKey string) (Bucket, bool) {
	for _, b := range r.Buckets {
		if b.PeriodKey == periodKey {
			return b, true
		}
	}
	return Bucket{}, false
}

// Section is a non-year bucket together with the notes assigned to it.
type Section struct {
	Bucket
	Notes []note.Note `json:"notes"`
}

// Sections joins notes against the assignment, in bucket order. Notes whose
// key names no bucket are gathered into trailing sections, first seen first.
func (r Result) Sections(notes []note.Note) []Section {
	grouped := map[string][]note.Note{}
	var orphans []string
	known := map[string]bool{}
	for _, b := range r.Buckets {
		known[b.PeriodKey] = true
	}

	for _, n := range notes {
		k, ok := r.Assignment[n.ID]
		if !ok {
			continue
		}
		if !known[k] {
			if _, seen := grouped[k]; !seen {
				orphans = append(orphans, k)
			}
		}
		grouped[k] = append(grouped[k], n)
	}

	out := make([]Section, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		if b.Kind == KindYear {
			continue
		}
		out = append(out, Section{Bucket: b, Notes: grouped[b.PeriodKey]})
	}
	for _, k := range orphans {
		ns := grouped[k]
		out = append(out, Section{
			Bucket: Bucket{Kind: KindMonth, Label: k, PeriodKey: k, Count: len(ns)},
			Notes:  ns,
		})
	}
	return out
}

// SortNewestFirst orders notes by date, newest first, keeping input order
// for notes on the same day. Unparseable dates sort last.
func SortNewestFirst(notes []note.Note) []note.Note {
	out := make([]note.Note, len(notes))
	copy(out, notes)

	dates := make(map[string]time.Time, len(out))
	for _, n := range out {
		d, _ := note.ParseDate(n.Date)
		dates[n.ID] = d
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dates[out[i].ID].After(dates[out[j].ID])
	})
	return out
}
