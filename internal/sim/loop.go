package sim

// Window is the presentation host that owns the frame loop's lifetime.
type Window interface {
	ShouldClose() bool
	Close()
	// Refresh presents the frame and paces to the next one.
	Refresh()
}

// Presenter receives one snapshot per frame after logical steps drain.
type Presenter interface {
	Present(Snapshot)
}

// Loop runs frames until w reports ShouldClose. now returns wall-clock
// milliseconds.
func Loop(w Window, src KeySource, p Presenter, r *Round, now func() int64) {
	in := NewInput()
	r.Start(now())
	for !w.ShouldClose() {
		in.Sample(src)
		if r.Frame(now(), in) {
			w.Close()
		}
		p.Present(r.Snapshot())
		w.Refresh()
	}
}
