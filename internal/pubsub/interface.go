package pubsub

// PubSubClient publishes lifecycle events for downstream consumers.
type PubSubClient interface {
	SendMessage(topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
