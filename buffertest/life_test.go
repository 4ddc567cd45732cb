package buffertest

import "testing"

func TestLifeLog(t *testing.T) {
	log := NewLifeLog()

	a := log.New(1)
	b := log.New(2)
	if log.Live() != 2 {
		t.Fatalf("expected 2 live, got %d", log.Live())
	}

	b.Dispose()
	a.Dispose()
	if log.Live() != 0 {
		t.Fatalf("expected 0 live, got %d", log.Live())
	}
	if got := log.Drops(); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("unexpected drop order: %v", got)
	}
}

func TestLifeDoubleDisposePanics(t *testing.T) {
	log := NewLifeLog()
	v := log.New(1)
	v.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on double dispose")
		}
	}()
	v.Dispose()
}
