package playlist

import "testing"

type captureSink struct{ events []Event }

func (c *captureSink) PublishAudio(ev Event) { c.events = append(c.events, ev) }

func TestStartBeginsAtFirstTrack(t *testing.T) {
	sink := &captureSink{}
	p := New([]string{"a.mp3", "b.mp3"}, sink, nil)

	p.Start()

	track, playing := p.Current()
	if track != "a.mp3" || !playing {
		t.Fatalf("expected a.mp3 playing, got %s/%v", track, playing)
	}
	if len(sink.events) != 1 || !sink.events[0].Playing {
		t.Fatalf("expected one playing event, got %v", sink.events)
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	p := New([]string{"a.mp3", "b.mp3"}, nil, nil)
	p.Start()

	p.Advance()
	if track, _ := p.Current(); track != "b.mp3" {
		t.Fatalf("expected b.mp3, got %s", track)
	}
	p.Advance()
	if track, _ := p.Current(); track != "a.mp3" {
		t.Fatalf("expected wrap to a.mp3, got %s", track)
	}
}

func TestAdvanceIgnoredWhileStopped(t *testing.T) {
	p := New([]string{"a.mp3", "b.mp3"}, nil, nil)

	p.Advance()
	if track, playing := p.Current(); track != "a.mp3" || playing {
		t.Fatalf("stale track-ended must be ignored, got %s/%v", track, playing)
	}

	p.Start()
	p.Stop()
	p.Advance()
	if track, _ := p.Current(); track != "a.mp3" {
		t.Fatalf("advance after stop must be ignored, got %s", track)
	}
}

func TestStopStopsOnce(t *testing.T) {
	sink := &captureSink{}
	p := New([]string{"a.mp3"}, sink, nil)
	p.Start()
	p.Stop()
	p.Stop()

	if len(sink.events) != 2 {
		t.Fatalf("double stop must publish once, got %d events", len(sink.events))
	}
	if sink.events[1].Playing {
		t.Fatal("expected stopped event")
	}
}

func TestToggleMute(t *testing.T) {
	sink := &captureSink{}
	p := New(nil, sink, nil)

	if !p.ToggleMute() {
		t.Fatal("expected muted true")
	}
	if p.ToggleMute() {
		t.Fatal("expected muted false")
	}
	if !sink.events[0].Muted || sink.events[1].Muted {
		t.Fatalf("mute flags not published: %v", sink.events)
	}
}

func TestDefaultTracksWhenEmpty(t *testing.T) {
	p := New(nil, nil, nil)
	if len(p.tracks) != len(DefaultTracks()) {
		t.Fatalf("expected default rotation, got %d tracks", len(p.tracks))
	}
}
