package batch

// NotificationEvent is a read-only progress snapshot delivered to an
// Observer. Consumers must not assume every intermediate value is delivered;
// the throttle drops samples, keeping only monotonic progress plus one
// guaranteed terminal event per run.
type NotificationEvent struct {
	Current int
	Total   int
}

// Fraction returns progress in [0, 1]. A zero-total run reports 1.
func (e NotificationEvent) Fraction() float64 {
	if e.Total == 0 {
		return 1
	}
	return float64(e.Current) / float64(e.Total)
}

// Observer receives throttled progress notifications. It may be invoked from
// any worker goroutine and must be fast and non-blocking; slow consumers
// should hand the event off to their own goroutine or event loop.
type Observer func(NotificationEvent)

// ChannelObserver returns an Observer that forwards events into ch without
// ever blocking a worker. When ch is full, one stale buffered event is
// discarded in favor of the new one, so a consumer that falls behind sees
// the most recent snapshot (and therefore the terminal event). The channel
// must be buffered (cap >= 1); a buffer of 1 is sufficient for typical UI
// consumers.
func ChannelObserver(ch chan NotificationEvent) Observer {
	return func(e NotificationEvent) {
		select {
		case ch <- e:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- e:
		default:
		}
	}
}
