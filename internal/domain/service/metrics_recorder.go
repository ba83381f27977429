package service

import "autobid/internal/domain/entity"

// MetricsRecorder counts business operations for monitoring.
type MetricsRecorder interface {
	// RecordLifecycle counts a soft or hard delete of target. A nil err is a success.
	RecordLifecycle(target string, req entity.DeleteRequest, err error)

	// RecordImportRow counts one processed location import row.
	RecordImportRow(err error)
}
