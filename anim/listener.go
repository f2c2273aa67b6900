package anim

// Listener receives animation lifecycle callbacks. Either func may be nil.
type Listener struct {
	OnStart func()
	OnEnd   func()
}

type listeners struct {
	list []Listener
}

// AddListener registers l. Listeners fire in registration order.
func (ls *listeners) AddListener(l Listener) {
	ls.list = append(ls.list, l)
}

func (ls *listeners) fireStart() {
	for _, l := range ls.list {
		if l.OnStart != nil {
			l.OnStart()
		}
	}
}

func (ls *listeners) fireEnd() {
	for _, l := range ls.list {
		if l.OnEnd != nil {
			l.OnEnd()
		}
	}
}
