package game

import "strconv"

// Message kinds understood by the range display.
const (
	MsgLimit = 'M'
	MsgScore = 'S'
	MsgTime  = 'T'
)

type Message struct {
	Kind  byte
	Value int
}

func (m Message) String() string {
	return string(m.Kind) + ": " + strconv.Itoa(m.Value)
}

// Sink receives status lines for the display/host.
type Sink interface {
	Emit(msg Message)
}

// Sinks fans a message out to several displays.
type Sinks []Sink

func (s Sinks) Emit(msg Message) {
	for _, sink := range s {
		sink.Emit(msg)
	}
}

// DiscardSink drops everything.
type DiscardSink struct{}

func (DiscardSink) Emit(Message) {}
