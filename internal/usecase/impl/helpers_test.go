package impl

import (
	"io"
	"log/slog"
	"testing"

	"autobid/internal/domain/service"
	mockService "autobid/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPublisher returns a publisher mock that accepts any invalidation.
func newPublisher(t *testing.T) *mockService.MockEventPublisher {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishViewInvalidated(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	return publisher
}

// newMetrics returns a metrics mock that accepts any observation.
func newMetrics(t *testing.T) *mockService.MockMetricsRecorder {
	recorder := mockService.NewMockMetricsRecorder(t)
	recorder.EXPECT().RecordLifecycle(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	recorder.EXPECT().RecordImportRow(mock.Anything).Return().Maybe()

	return recorder
}

// viewsOf matches an invalidation event carrying exactly the given views.
func viewsOf(views ...string) any {
	return mock.MatchedBy(func(event *service.ViewInvalidatedEvent) bool {
		if len(event.Views) != len(views) {
			return false
		}
		for i, view := range views {
			if string(event.Views[i]) != view {
				return false
			}
		}

		return true
	})
}
