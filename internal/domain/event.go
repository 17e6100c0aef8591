package domain

// Event is the envelope pushed to real-time subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

const EventTaskUpdated = "taskUpdated"
