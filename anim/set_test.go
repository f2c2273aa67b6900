package anim

import (
	"testing"
	"time"
)

type fakeControl struct {
	enabled bool
	history []bool
}

func (c *fakeControl) SetEnabled(enabled bool) {
	c.enabled = enabled
	c.history = append(c.history, enabled)
}

func TestSetEndsAfterAllMembers(t *testing.T) {
	a, b := &floatBox{}, &floatBox{}
	short := OfFloat(a.prop(), 0, 1)
	short.SetDuration(100 * time.Millisecond)
	long := OfFloat(b.prop(), 0, 1)
	long.SetDuration(300 * time.Millisecond)

	ends := 0
	s := Together(short, long)
	s.AddListener(Listener{OnEnd: func() { ends++ }})
	s.Start()

	if s.Update(200 * time.Millisecond) {
		t.Fatal("set finished before its longest member")
	}
	if short.Running() {
		t.Error("short member should have ended")
	}
	if ends != 0 {
		t.Errorf("expected no end yet, got %d", ends)
	}
	if !s.Update(100 * time.Millisecond) {
		t.Fatal("set should finish with its last member")
	}
	if ends != 1 {
		t.Errorf("expected exactly one end, got %d", ends)
	}
	s.Update(time.Second)
	if ends != 1 {
		t.Errorf("expected end to fire once, got %d", ends)
	}
}

func TestSetDurationAppliesToMembers(t *testing.T) {
	x, y := OfFloat((&floatBox{}).prop(), 1), OfFloat((&floatBox{}).prop(), 1)
	s := Together(x, y)
	s.SetDuration(1500 * time.Millisecond)
	if x.Duration() != 1500*time.Millisecond || y.Duration() != 1500*time.Millisecond {
		t.Errorf("expected members to share 1500ms, got %v and %v", x.Duration(), y.Duration())
	}
}

func TestSetStartFiresBeforeMembers(t *testing.T) {
	var order []string
	m := OfFloat((&floatBox{}).prop(), 1)
	m.AddListener(Listener{OnStart: func() { order = append(order, "member") }})
	s := Together(m)
	s.AddListener(Listener{OnStart: func() { order = append(order, "set") }})
	s.Start()

	if len(order) != 2 || order[0] != "set" || order[1] != "member" {
		t.Errorf("expected [set member], got %v", order)
	}
}

func TestEmptySetFinishesImmediately(t *testing.T) {
	s := Together()
	s.Start()
	if !s.Update(0) {
		t.Error("empty set should finish on first update")
	}
}

func TestDisableDuring(t *testing.T) {
	c := &fakeControl{enabled: true}
	tr := OfFloat((&floatBox{}).prop(), -360, 0)
	tr.SetDuration(time.Second)
	a := DisableDuring(tr, c)

	a.Start()
	if c.enabled {
		t.Fatal("control should be disabled once the animation starts")
	}
	a.Update(500 * time.Millisecond)
	if c.enabled {
		t.Fatal("control should stay disabled mid-animation")
	}
	a.Update(500 * time.Millisecond)
	if !c.enabled {
		t.Fatal("control should be re-enabled when the animation ends")
	}
	if len(c.history) != 2 {
		t.Errorf("expected exactly two toggles, got %v", c.history)
	}
}

func TestDisableDuringOnSet(t *testing.T) {
	c := &fakeControl{enabled: true}
	s := Together(OfFloat((&floatBox{}).prop(), 1), OfFloat((&floatBox{}).prop(), 2))
	DisableDuring(s, c)

	d := NewDriver()
	d.Start(s)
	if c.enabled {
		t.Fatal("control should be disabled")
	}
	d.Update(DefaultDuration)
	if !c.enabled {
		t.Fatal("control should be enabled after the set ends")
	}
}
