package events

type EventType string

const (
	EventTypeKittyCreated EventType = "KITTY_CREATED"
	EventTypeKittyBred    EventType = "KITTY_BRED"
)
