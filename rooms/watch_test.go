package rooms

import "testing"

func TestWatcherCloseShutsDownRun(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	// the run loop owns the channels; both must close once it exits
	if _, ok := <-w.Events; ok {
		t.Error("events channel stayed open after close")
	}
	if _, ok := <-w.Errors; ok {
		t.Error("errors channel stayed open after close")
	}
}
