package web

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/symbl-cc/symbl/internal/storage"
	"github.com/symbl-cc/symbl/internal/web/routepath"
)

// dayFormat is the calendar date layout used by the day-symbol schedule.
const dayFormat = "2006-01-02"

// DaySymbolEntry is one day-symbol widget entry serialized into pages.
type DaySymbolEntry struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Src   string `json:"src"`
}

// daySymbolWindow loads the widget entries for yesterday, today and
// tomorrow. The three-day span keeps cached pages correct across
// midnight in any client timezone. Days without a scheduled symbol are
// omitted; entries come back sorted by date.
func daySymbolWindow(ctx context.Context, store storage.Store, lang string, now time.Time) ([]DaySymbolEntry, error) {
	from := now.AddDate(0, 0, -1).Format(dayFormat)
	to := now.AddDate(0, 0, 1).Format(dayFormat)

	days, err := store.DaySymbolsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load day symbols: %w", err)
	}

	entries := make([]DaySymbolEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, DaySymbolEntry{
			Date:  day.Day,
			Title: day.Symbol.Name,
			URL:   routepath.Symbol(lang, day.Symbol.PathSegment()),
			Src:   day.Symbol.Image,
		})
	}
	return entries, nil
}

// daySymbolsJSON serializes widget entries for the layout script tag.
// An empty window serializes as an empty array so the client script
// always sees a list.
func daySymbolsJSON(entries []DaySymbolEntry) (template.JS, error) {
	if entries == nil {
		entries = []DaySymbolEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal day symbols: %w", err)
	}
	return template.JS(raw), nil
}
