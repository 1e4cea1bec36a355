package mandel

import "fmt"

// EventKind discriminates Event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerMoved
	EventKeyPressed
)

// Key is a frontend-independent key symbol.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyConfirm
	KeyQuit
	KeyReset
	// KeyLandmark1 .. KeyLandmark6 are contiguous; see Landmarks.
	KeyLandmark1
	KeyLandmark2
	KeyLandmark3
	KeyLandmark4
	KeyLandmark5
	KeyLandmark6
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyConfirm:   "confirm",
	KeyQuit:      "quit",
	KeyReset:     "reset",
	KeyLandmark1: "1",
	KeyLandmark2: "2",
	KeyLandmark3: "3",
	KeyLandmark4: "4",
	KeyLandmark5: "5",
	KeyLandmark6: "6",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey maps a key name, as used by the browser client, to a Key.
func ParseKey(name string) Key {
	for k, s := range keyNames {
		if s == name {
			return k
		}
	}
	return KeyUnknown
}

// Event is one discrete input event.
type Event struct {
	Kind EventKind
	X, Y int // EventPointerMoved, pixel coordinates
	Key  Key // EventKeyPressed
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func PointerMoved(x, y int) Event { return Event{Kind: EventPointerMoved, X: x, Y: y} }

func KeyPressed(k Key) Event { return Event{Kind: EventKeyPressed, Key: k} }

func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventPointerMoved:
		return fmt.Sprintf("pointer(%d,%d)", e.X, e.Y)
	case EventKeyPressed:
		return "key(" + e.Key.String() + ")"
	}
	return fmt.Sprintf("EventKind(%d)", int(e.Kind))
}
