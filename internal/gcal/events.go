package gcal

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

// EventDetails represents a single Google Calendar event.
type EventDetails struct {
	ID          string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	AllDay      bool
	CalendarID  string
	Organizer   *EventPerson
	Attendees   []EventPerson
}

// EventPerson represents an organizer or attendee on a calendar event.
type EventPerson struct {
	Email       string
	DisplayName string
	Optional    bool
}

func parseGoogleEventTimes(item *calendar.Event, loc *time.Location) (time.Time, time.Time, bool, error) {
	if item == nil || item.Start == nil || item.End == nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("event is missing start or end")
	}

	// All-day events use Date instead of DateTime.
	if item.Start.Date != "" {
		startDate, err := time.ParseInLocation("2006-01-02", item.Start.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse all-day start date: %w", err)
		}
		endDate, err := time.ParseInLocation("2006-01-02", item.End.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse all-day end date: %w", err)
		}
		return startDate, endDate, true, nil
	}

	if item.Start.DateTime == "" || item.End.DateTime == "" {
		return time.Time{}, time.Time{}, false, fmt.Errorf("event datetime is missing")
	}

	startTime, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse start datetime: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse end datetime: %w", err)
	}

	return startTime, endTime, false, nil
}

func convertEvent(item *calendar.Event, calendarID string) (EventDetails, error) {
	startTime, endTime, allDay, err := parseGoogleEventTimes(item, time.Now().Location())
	if err != nil {
		return EventDetails{}, err
	}

	var organizer *EventPerson
	if item.Organizer != nil && (item.Organizer.Email != "" || item.Organizer.DisplayName != "") {
		organizer = &EventPerson{
			Email:       item.Organizer.Email,
			DisplayName: item.Organizer.DisplayName,
		}
	}

	attendees := make([]EventPerson, 0, len(item.Attendees))
	for _, attendee := range item.Attendees {
		if attendee != nil && attendee.Email != "" {
			attendees = append(attendees, EventPerson{
				Email:       attendee.Email,
				DisplayName: attendee.DisplayName,
				Optional:    attendee.Optional,
			})
		}
	}

	endCopy := endTime
	return EventDetails{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		StartTime:   startTime,
		EndTime:     &endCopy,
		AllDay:      allDay,
		CalendarID:  calendarID,
		Organizer:   organizer,
		Attendees:   attendees,
	}, nil
}

// ListEventsForDate returns the events of one local calendar day, in start
// order. Cancelled and malformed events are skipped rather than failing the
// whole fetch.
func (c *Client) ListEventsForDate(calendarID string, date time.Time) ([]EventDetails, error) {
	if c.service == nil {
		return nil, ErrNotAuthenticated
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var result []EventDetails
	pageToken := ""

	for {
		call := c.service.Events.List(calendarID).
			TimeMin(startOfDay.Format(time.RFC3339)).
			TimeMax(endOfDay.Format(time.RFC3339)).
			SingleEvents(true).
			ShowDeleted(false).
			OrderBy("startTime")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}

		for _, item := range events.Items {
			if item == nil || item.Status == "cancelled" {
				continue
			}
			event, convErr := convertEvent(item, calendarID)
			if convErr != nil {
				continue
			}
			result = append(result, event)
		}

		if events.NextPageToken == "" {
			break
		}
		pageToken = events.NextPageToken
	}

	return result, nil
}
