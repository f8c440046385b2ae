package memstore

import "time"

// Base simulated latencies per operation. They are pacing, not
// correctness: the effective delay is base * LatencyScale, and the default
// scale of 0 disables them entirely. The sleep always happens before the
// critical section; no mutation ever straddles it.
const (
	delayReportList   = 300 * time.Millisecond
	delayReportGet    = 200 * time.Millisecond
	delayReportCreate = 400 * time.Millisecond
	delayReportUpdate = 350 * time.Millisecond
	delayReportDelete = 250 * time.Millisecond

	delayDocList     = 300 * time.Millisecond
	delayDocGet      = 200 * time.Millisecond
	delayDocCreate   = 400 * time.Millisecond
	delayDocUpdate   = 300 * time.Millisecond
	delayDocDelete   = 250 * time.Millisecond
	delayDocCategory = 250 * time.Millisecond
	delayDocRelated  = 200 * time.Millisecond

	delayFeedbackList   = 300 * time.Millisecond
	delayFeedbackGet    = 200 * time.Millisecond
	delayFeedbackCreate = 400 * time.Millisecond
	delayFeedbackUpdate = 350 * time.Millisecond
	delayFeedbackDelete = 250 * time.Millisecond

	delayMeetingList   = 250 * time.Millisecond
	delayMeetingGet    = 200 * time.Millisecond
	delayMeetingCreate = 300 * time.Millisecond
	delayMeetingUpdate = 300 * time.Millisecond
	delayMeetingDelete = 250 * time.Millisecond
)

// pause sleeps for the scaled operation latency. It is called before any
// lock is taken so the artificial wait never extends a critical section.
func (r *Registry) pause(base time.Duration) {
	r.mu.RLock()
	scale := r.config.LatencyScale
	sleep := r.sleep
	r.mu.RUnlock()

	if scale <= 0 {
		return
	}
	if d := time.Duration(float64(base) * scale); d > 0 {
		sleep(d)
	}
}
