package sim

import "testing"

type fakeWindow struct {
	closed    bool
	closes    int
	refreshes int
	onRefresh func(n int)
}

func (w *fakeWindow) ShouldClose() bool { return w.closed }

func (w *fakeWindow) Close() {
	w.closed = true
	w.closes++
}

func (w *fakeWindow) Refresh() {
	w.refreshes++
	if w.onRefresh != nil {
		w.onRefresh(w.refreshes)
	}
}

type recordingPresenter struct {
	snaps []Snapshot
}

func (p *recordingPresenter) Present(s Snapshot) { p.snaps = append(p.snaps, s) }

func TestLoopRunsUntilQuit(t *testing.T) {
	keys := &fakeKeys{}
	w := &fakeWindow{}
	w.onRefresh = func(n int) {
		switch n {
		case 1:
			keys.press(KeyConfirm)
		case 2:
			keys.release(KeyConfirm)
		case 4:
			keys.press(KeyQuit)
		}
	}
	p := &recordingPresenter{}

	r, err := NewRound(DefaultConfig(), NewSession(), &seqSource{vals: []int{0, 0}}, nil)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	var clock int64
	now := func() int64 {
		clock += 100
		return clock
	}

	Loop(w, keys, p, r, now)

	if w.closes != 1 {
		t.Errorf("Expected one Close call, got %d", w.closes)
	}
	if len(p.snaps) != 5 || w.refreshes != 5 {
		t.Fatalf("Expected 5 frames, got %d presents and %d refreshes", len(p.snaps), w.refreshes)
	}
	if p.snaps[0].Phase != PhaseNotStarted {
		t.Errorf("frame 0: expected not started, got %v", p.snaps[0].Phase)
	}
	if p.snaps[1].Phase != PhaseRunning {
		t.Errorf("frame 1: expected running, got %v", p.snaps[1].Phase)
	}
	last := p.snaps[len(p.snaps)-1]
	if last.Body[0].X <= StartCell.X {
		t.Errorf("Expected the snake to have moved right, head %v", last.Body[0])
	}
}

func TestLoopExitsWhenWindowCloses(t *testing.T) {
	w := &fakeWindow{closed: true}
	p := &recordingPresenter{}
	r, err := NewRound(DefaultConfig(), NewSession(), NewRand(3), nil)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	Loop(w, &fakeKeys{}, p, r, func() int64 { return 0 })
	if len(p.snaps) != 0 {
		t.Errorf("Expected no frames for a closed window, got %d", len(p.snaps))
	}
}
