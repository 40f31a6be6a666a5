package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventsWriter publishes outbox events (orders, notifications). Only the
// dispatcher worker writes to it; the API process leaves it nil.
var EventsWriter *kafka.Writer

const EventsTopic = "novamart.backoffice.events"

func ConnectKafka() {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
		log.Println("⚠️  KAFKA_BROKERS not set, using local broker:", brokers)
	}

	EventsWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        EventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}

	log.Println("✅ Kafka writer initialized for topic", EventsTopic)
}

func CloseKafka() {
	if EventsWriter != nil {
		if err := EventsWriter.Close(); err != nil {
			log.Printf("[kafka] close failed: %v", err)
		}
	}
}
