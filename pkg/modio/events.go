package modio

import "strings"

// EventType identifies what an event record describes.
type EventType int

// Event types. Values below EventTeamJoin concern the mod itself and
// encode with a MOD prefix; the rest concern a user and encode with a
// USER prefix. EventFileChanged is the one irregular encoding.
const (
	EventFileChanged EventType = iota
	EventAvailable
	EventUnavailable
	EventEdited
	EventDeleted
	EventTeamChanged
	EventTeamJoin
	EventTeamLeave
	EventSubscribe
	EventUnsubscribe
	EventOther
)

var eventTypeNames = [...]string{
	"file_changed",
	"available",
	"unavailable",
	"edited",
	"deleted",
	"team_changed",
	"team_join",
	"team_leave",
	"subscribe",
	"unsubscribe",
	"other",
}

// String returns the lowercase name of the event type.
func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventTypeNames) {
		return "other"
	}

	return eventTypeNames[e]
}

// Encode returns the wire form of the event type.
// file_changed encodes as MODFILE_CHANGED; the remaining mod-scoped
// values encode as MOD_<NAME> and user-scoped values as USER_<NAME>.
func (e EventType) Encode() string {
	if e == EventFileChanged {
		return "MODFILE_CHANGED"
	}

	name := strings.ToUpper(e.String())
	if e < EventTeamJoin {
		return "MOD_" + name
	}

	return "USER_" + name
}

// ParseEventType maps a wire value back to its EventType. Unknown
// values map to EventOther.
func ParseEventType(wire string) EventType {
	for typ := EventFileChanged; typ <= EventUnsubscribe; typ++ {
		if typ.Encode() == wire {
			return typ
		}
	}

	return EventOther
}

// Event represents a single entry from an event log endpoint.
type Event struct {
	ID        int64  `json:"id"         yaml:"id"`
	ModID     int64  `json:"mod_id"     yaml:"mod_id"`
	UserID    int64  `json:"user_id"    yaml:"user_id"`
	DateAdded int64  `json:"date_added" yaml:"date_added"`
	EventType string `json:"event_type" yaml:"event_type"`
}

// Type decodes the wire event type.
func (e *Event) Type() EventType {
	return ParseEventType(e.EventType)
}
