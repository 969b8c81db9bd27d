// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/cardgen/internal/export"
	exportmock "github.com/KirkDiggler/cardgen/internal/export/mock"
	clockmock "github.com/KirkDiggler/cardgen/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/cardgen/internal/pkg/idgen/mock"
)

// ExpectFixedClock makes every Now call return at
func ExpectFixedClock(mockClock *clockmock.MockClock, at time.Time) {
	mockClock.EXPECT().Now().Return(at).AnyTimes()
}

// ExpectCardNumber sets up one identifier draw for prefix
func ExpectCardNumber(mockNumbers *idgenmock.MockNumberGenerator, prefix, identifier string) *gomock.Call {
	return mockNumbers.EXPECT().Generate(prefix).Return(identifier, nil)
}

// ExpectCapture sets up one Prepare, Capture and Close round trip that
// returns data for format at quality.
func ExpectCapture(
	mockExporter *exportmock.MockExporter, mockStage *exportmock.MockStage,
	format export.Format, quality int, data []byte,
) {
	gomock.InOrder(
		mockExporter.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(mockStage, nil),
		mockStage.EXPECT().Capture(gomock.Any(), format, quality).Return(data, nil),
		mockStage.EXPECT().Close().Return(nil),
	)
}
