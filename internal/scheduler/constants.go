package scheduler

// Log messages
const (
	LogMsgScheduleSkipped = "Scheduled job not enqueued"
	LogMsgDebounceFlushed = "Debounced trigger flushed"
)
