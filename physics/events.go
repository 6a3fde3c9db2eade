package physics

import "time"

// EventName identifies an engine lifecycle hook.
type EventName string

const (
	EventBeforeUpdate EventName = "beforeUpdate"
	EventAfterUpdate  EventName = "afterUpdate"
)

// Event is passed to handlers once per integration step.
type Event struct {
	Name      EventName
	Step      uint64
	Delta     time.Duration
	Timestamp time.Duration
}

// Handler runs synchronously inside Engine.Update.
type Handler func(Event)

type listeners struct {
	byName map[EventName][]Handler
}

func (l *listeners) on(name EventName, h Handler) {
	if h == nil {
		return
	}
	if l.byName == nil {
		l.byName = make(map[EventName][]Handler)
	}
	l.byName[name] = append(l.byName[name], h)
}

func (l *listeners) emit(evt Event) {
	for _, h := range l.byName[evt.Name] {
		h(evt)
	}
}
