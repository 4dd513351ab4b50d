package service

// MetricsRecorder collects counters for the session and notification core.
type MetricsRecorder interface {
	RecordProfileCacheHit()
	RecordProfileCacheMiss()
	RecordProfileFallback(reason string)
	RecordSubscriptionOpened()
	RecordSubscriptionDropped()
	RecordNotificationDelivered(kind string)
	RecordMarkReadFailure()
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) RecordProfileCacheHit()             {}
func (NopMetrics) RecordProfileCacheMiss()            {}
func (NopMetrics) RecordProfileFallback(string)       {}
func (NopMetrics) RecordSubscriptionOpened()          {}
func (NopMetrics) RecordSubscriptionDropped()         {}
func (NopMetrics) RecordNotificationDelivered(string) {}
func (NopMetrics) RecordMarkReadFailure()             {}
