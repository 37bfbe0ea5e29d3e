package domain

type KafkaMessage struct {
	Key     string
	Payload []byte
	Topic   string
	// Attempts counts failed writes before the message reached the dlq
	Attempts int
}
