package layout

// Observer converts container size observations into Geometry snapshots and
// publishes them to a single callback. The owning component feeds it the
// container size whenever the host reports a change and releases it exactly
// once on teardown. Only the most recent snapshot matters: there is no
// queueing, the last observation wins.
//
// Observers are confined to the UI goroutine, like the models that own them.
type Observer struct {
	publish func(Geometry)
	closed  bool
}

// NewObserver creates an observer publishing to the given callback.
// A nil callback yields an observer that ignores all observations, matching
// the no-op behavior when there is no container to watch.
func NewObserver(publish func(Geometry)) *Observer {
	return &Observer{publish: publish}
}

// Observe recomputes geometry from the container size in pixels and publishes
// the snapshot. No-op after Close or when no callback is attached.
func (o *Observer) Observe(width, height float64) {
	if o == nil || o.closed || o.publish == nil {
		return
	}
	o.publish(Compute(width, height))
}

// Close releases the observer. Safe to call multiple times; nothing is
// published after the first call.
func (o *Observer) Close() {
	if o != nil {
		o.closed = true
	}
}
