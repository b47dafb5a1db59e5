// Package events publica eventos de movimientos de inventario a Kafka para
// consumidores externos (reabastecimiento, analítica).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/application/inventory"
)

// Verificar en tiempo de compilación que KafkaPublisher implementa el puerto.
var _ inventory.MovementPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher implementa inventory.MovementPublisher sobre kafka-go.
// La clave del mensaje es el part_id: los movimientos de un mismo repuesto
// caen en la misma partición y conservan el orden.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher construye el publicador. brokers es una lista host:port
// separada por comas.
func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer}
}

// PublishMovementRecorded serializa el evento y lo escribe en el topic.
func (p *KafkaPublisher) PublishMovementRecorded(ctx context.Context, event dto.MovementRecordedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PartID),
		Value: value,
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("publicar evento: %w", err)
	}

	log.Debug().
		Str("event_id", event.EventID).
		Str("movement_id", event.MovementID).
		Msg("evento de movimiento publicado")
	return nil
}

// Close cierra el writer subyacente.
func (p *KafkaPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
