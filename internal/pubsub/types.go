package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventConfirmScores EventType = "confirm-scores"
	EventUpdateRatings EventType = "update-ratings"
	EventNotifyResult  EventType = "notify-result"
)
