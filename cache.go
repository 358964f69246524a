package main

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// dayCache keeps recently built day views of the current load. Views are
// shared, so callers that change focus must work on a copy.
type dayCache struct {
	views *lru.Cache[string, *DayView]
}

func newDayCache(size int) (*dayCache, error) {
	views, err := lru.New[string, *DayView](size)
	if err != nil {
		return nil, err
	}
	return &dayCache{views: views}, nil
}

func dayCacheKey(loadID, date string) string { return loadID + "|" + date }

func (c *dayCache) get(loadID, date string) (*DayView, bool) {
	return c.views.Get(dayCacheKey(loadID, date))
}

func (c *dayCache) add(loadID string, view *DayView) {
	c.views.Add(dayCacheKey(loadID, view.Date), view)
}

// purge drops every view; called whenever a new export replaces the data.
func (c *dayCache) purge() { c.views.Purge() }

// clone copies the per-request parts of v so focus can change without
// touching the cached view.
func (v *DayView) clone() *DayView {
	cp := *v
	if v.Focus != nil {
		focus := *v.Focus
		cp.Focus = &focus
	}
	return &cp
}
