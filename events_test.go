package arbor

import "testing"

func TestEventsAttachDetach(t *testing.T) {
	g := NewGraph()
	sink := &recordingSink{}
	g.SetEventSink(sink)
	root := g.NewGroup("root")
	a := g.NewShape("a")

	g.AddChild(root, a)
	g.RemoveChild(root, a)

	var structural []GraphEvent
	for _, ev := range sink.events {
		if ev.Type == EventAttached || ev.Type == EventDetached {
			structural = append(structural, ev)
		}
	}
	want := []GraphEvent{
		{Type: EventAttached, Node: a, Parent: root},
		{Type: EventDetached, Node: a, Parent: root},
	}
	if len(structural) != len(want) {
		t.Fatalf("events = %v, want %v", structural, want)
	}
	for i := range want {
		if structural[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, structural[i], want[i])
		}
	}
}

func TestEventsLiveness(t *testing.T) {
	g := NewGraph()
	sink := &recordingSink{}
	g.SetEventSink(sink)
	root := g.NewGroup("root")
	a := g.NewShape("a")
	g.AddChild(root, a)

	g.Activate(root)
	if sink.count(EventLive, root) != 1 || sink.count(EventLive, a) != 1 {
		t.Errorf("live events = %v", sink.events)
	}
	g.Activate(root)
	if sink.count(EventLive, root) != 1 {
		t.Error("a second grant should not emit another live event")
	}
	g.Deactivate(root)
	g.Deactivate(root)
	if sink.count(EventDead, root) != 1 || sink.count(EventDead, a) != 1 {
		t.Errorf("dead events = %v", sink.events)
	}
}

func TestEventsDestroy(t *testing.T) {
	g := NewGraph()
	root := g.NewGroup("root")
	a := g.NewShape("a")
	g.AddChild(root, a)
	sink := &recordingSink{}
	g.SetEventSink(sink)

	g.Destroy(root)
	if len(sink.events) != 1 || sink.events[0] != (GraphEvent{Type: EventDetached, Node: a, Parent: root}) {
		t.Errorf("events = %v, want one detach", sink.events)
	}
}

func TestEventSinkNil(t *testing.T) {
	g := NewGraph()
	g.SetEventSink(&recordingSink{})
	g.SetEventSink(nil)
	g.AddChild(g.NewGroup("root"), g.NewShape("a"))
}

func TestEventTypeString(t *testing.T) {
	if EventBoundsUpdated.String() != "bounds-updated" {
		t.Errorf("String = %q", EventBoundsUpdated.String())
	}
	if EventType(77).String() != "EventType(77)" {
		t.Errorf("String = %q", EventType(77).String())
	}
}
