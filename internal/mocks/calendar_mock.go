package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aadithv/scout/internal/gcal"
)

// MockCalendarClient is a mock implementation of the calendar client
type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) IsAuthenticated() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCalendarClient) GetAuthURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCalendarClient) ExchangeCode(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCalendarClient) Disconnect() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCalendarClient) ListEventsForDate(calendarID string, date time.Time) ([]gcal.EventDetails, error) {
	args := m.Called(calendarID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gcal.EventDetails), args.Error(1)
}

func (m *MockCalendarClient) ListCalendars() ([]gcal.CalendarInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gcal.CalendarInfo), args.Error(1)
}
