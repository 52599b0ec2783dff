package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
	"gdd-roadmap/pkg/gcalendar"
)

const calendarConcurrency = 4

// SyncCalendar creates one all-day event per category row, quarter q covering months
// 3(q-1) to 3q after the start date.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope, input analysis.CalendarInput) (analysis.CalendarOutput, error) {
	if uc.calendar == nil {
		return analysis.CalendarOutput{}, analysis.ErrCalendarDisabled
	}

	start, err := uc.dateMath.ParseDate(input.StartDate, uc.now())
	if err != nil {
		return analysis.CalendarOutput{}, fmt.Errorf("%w: %v", analysis.ErrInvalidStartDate, err)
	}

	a, err := uc.current(ctx, sc)
	if err != nil {
		return analysis.CalendarOutput{}, err
	}

	calendarID := strings.TrimSpace(input.CalendarID)
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}

	tl := timeline.Build(a.Schema)
	title := a.Schema.Overview.Title.Or("Roadmap")

	var (
		mu     sync.Mutex
		events = make([]analysis.CalendarEvent, len(tl.Rows))
		keep   = make([]bool, len(tl.Rows))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(calendarConcurrency)
	for i, row := range tl.Rows {
		if row.Source == timeline.SourcePhase {
			continue
		}
		g.Go(func() error {
			span := uc.dateMath.QuarterSpan(start, row.StartQuarter, row.EndQuarter)
			created, err := uc.calendar.CreateEvent(gctx, gcalendar.CreateEventRequest{
				CalendarID:  calendarID,
				Summary:     fmt.Sprintf("%s: %s", title, row.Title),
				Description: fmt.Sprintf("Quarters %d-%d of %d", row.StartQuarter, row.EndQuarter, tl.TotalQuarters),
				StartTime:   span.Start,
				EndTime:     span.End,
				AllDay:      true,
				Tags:        map[string]string{"roadmap_analysis": a.ID, "roadmap_row": row.Key},
			})
			if err != nil {
				return fmt.Errorf("row %s: %w", row.Key, err)
			}

			mu.Lock()
			events[i] = analysis.CalendarEvent{
				RowKey:  row.Key,
				Title:   row.Title,
				EventID: created.ID,
				Link:    created.HtmlLink,
				Start:   span.Start,
				End:     span.End,
			}
			keep[i] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.SyncCalendar: %v", err)
		return analysis.CalendarOutput{}, err
	}

	out := analysis.CalendarOutput{CalendarID: calendarID, Events: make([]analysis.CalendarEvent, 0, len(events))}
	for i, ev := range events {
		if keep[i] {
			out.Events = append(out.Events, ev)
		}
	}
	uc.l.Infof(ctx, "analysis.usecase.SyncCalendar: session=%s events=%d", sc.SessionID, len(out.Events))
	return out, nil
}
