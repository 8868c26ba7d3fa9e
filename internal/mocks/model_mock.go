package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aadithv/scout/internal/research"
)

// MockModelBackend is a mock implementation of the model backend used for
// founder identification, model listing, and research calls.
type MockModelBackend struct {
	mock.Mock
}

func (m *MockModelBackend) ListModelIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockModelBackend) IdentifyFounders(ctx context.Context, model, founderPrompt string) (string, error) {
	args := m.Called(ctx, model, founderPrompt)
	return args.String(0), args.Error(1)
}

func (m *MockModelBackend) Research(ctx context.Context, modelID, prompt string) (string, error) {
	args := m.Called(ctx, modelID, prompt)
	return args.String(0), args.Error(1)
}

// MockResearcher is a mock implementation of the research fallback loop
type MockResearcher struct {
	mock.Mock
}

func (m *MockResearcher) Run(ctx context.Context, prompt string, candidates []research.ModelCandidate) research.ReportResult {
	args := m.Called(ctx, prompt, candidates)
	return args.Get(0).(research.ReportResult)
}
