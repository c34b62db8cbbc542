// Package notification implementa el puerto notifier.Notifier sobre una cola
// Redis: Notify encola un job por destinatario (LPUSH) y retorna de inmediato;
// el worker pool los consume con BRPOP y entrega por SMTP. Los fallos se
// registran en el log y se descartan: nunca llegan al caller y el fallo de un
// destinatario no afecta a los demás.
package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
)

// QueueNotifications lista Redis donde se encolan los correos pendientes.
const QueueNotifications = "jobs:notifications"

// Job correo pendiente de envío: un destinatario por job para que el fallo
// de uno no bloquee a los demás.
type Job struct {
	Kind      string            `json:"kind"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}

var _ notifier.Notifier = (*Dispatcher)(nil)

// Dispatcher encola eventos de notificación en Redis.
type Dispatcher struct {
	rdb *redis.Client
}

// NewDispatcher construye el dispatcher con el cliente Redis.
func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// Notify encola un job por destinatario. Fire-and-forget: los errores de
// encolado se registran y se descartan.
func (d *Dispatcher) Notify(ctx context.Context, ev notifier.Event) {
	for _, recipient := range ev.Recipients {
		if recipient == "" {
			continue
		}
		job := Job{Kind: ev.Kind, Recipient: recipient, Data: ev.Data}
		encoded, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Str("kind", ev.Kind).Msg("notification: marshal job")
			continue
		}
		if err := d.rdb.LPush(ctx, QueueNotifications, encoded).Err(); err != nil {
			log.Error().Err(err).Str("kind", ev.Kind).Str("to", recipient).Msg("notification: encolar job")
		}
	}
}
