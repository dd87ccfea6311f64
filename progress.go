package prismesh

import "sync"

const (
	STAGE_VALIDATE Stage = iota
	STAGE_LEVELS
	STAGE_SIDE_FACES
	STAGE_CAPS
	STAGE_SURFACES
	STAGE_ASSEMBLE
)

type Stage uint8

func (s Stage) String() string {
	switch s {
	case STAGE_VALIDATE:
		return "validating structure"
	case STAGE_LEVELS:
		return "computing Z levels"
	case STAGE_SIDE_FACES:
		return "generating side faces"
	case STAGE_CAPS:
		return "generating caps"
	case STAGE_SURFACES:
		return "generating internal surfaces"
	case STAGE_ASSEMBLE:
		return "assembling mesh"
	default:
		return "unknown stage"
	}
}

// Progress is emitted at stage boundaries. Percent is monotonically
// non-decreasing within one run.
type Progress struct {
	Stage     Stage
	Percent   float64
	Processed int
	Total     int
}

// ProgressFunc receives progress events. Delivery is best-effort: events
// are dropped rather than ever blocking the pipeline on a slow observer.
type ProgressFunc func(Progress)

// progressSink decouples the pipeline from the observer with a buffered
// channel; sends never block, a full buffer drops the event
type progressSink struct {
	ch   chan Progress
	done sync.WaitGroup
}

func newProgressSink(fn ProgressFunc) *progressSink {
	if fn == nil {
		return nil
	}
	s := &progressSink{ch: make(chan Progress, 32)}
	s.done.Add(1)
	go func() {
		defer s.done.Done()
		for p := range s.ch {
			fn(p)
		}
	}()
	return s
}

// emit is fire-and-forget; a nil sink is a no-op
func (s *progressSink) emit(p Progress) {
	if s == nil {
		return
	}
	select {
	case s.ch <- p:
	default:
	}
}

// close drains the buffered events; only an in-flight callback can delay it
func (s *progressSink) close() {
	if s == nil {
		return
	}
	close(s.ch)
	s.done.Wait()
}
