package entity

import "time"

type KafkaDlq struct {
	Id            uint `gorm:"primaryKey"`
	Topic         string
	Key           string
	Payload       []byte
	AttemptCount  int
	LastAttemptAt time.Time
}

func (KafkaDlq) TableName() string {
	return "kafka_dlq"
}
