package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
)

// StartWorkerPool lanza numWorkers goroutines consumiendo la cola de
// notificaciones. Cada goroutine bloquea en BRPOP, sin consumir CPU en reposo.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, mailer *Mailer, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, mailer, i)
	}
	log.Info().Int("workers", numWorkers).Msg("notification: worker pool iniciado")
}

func runWorker(ctx context.Context, rdb *redis.Client, mailer *Mailer, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("notification: worker detenido")
			return
		default:
			// Pop bloqueante: espera hasta 5s y vuelve a chequear ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueNotifications).Result()
			if err != nil {
				continue // timeout o contexto cancelado
			}
			if len(result) < 2 {
				continue
			}
			processJob(mailer, result[1])
		}
	}
}

// processJob entrega un correo. Los fallos se registran y se descartan; no hay
// reintentos y el resto de la cola sigue su curso.
func processJob(mailer *Mailer, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("notification: job inválido")
		return
	}
	if job.Recipient == "" {
		log.Warn().Str("kind", job.Kind).Msg("notification: job sin destinatario")
		return
	}
	subject, body := render(job)
	if err := mailer.Send(job.Recipient, subject, body); err != nil {
		log.Error().Err(err).Str("kind", job.Kind).Str("to", job.Recipient).Msg("notification: envío fallido")
		return
	}
	log.Info().Str("kind", job.Kind).Str("to", job.Recipient).Msg("notification: correo enviado")
}

// render arma asunto y cuerpo según el tipo de evento. Toda la presentación
// (textos, formato) vive aquí; el core solo emite eventos estructurados.
func render(job Job) (subject, body string) {
	switch job.Kind {
	case notifier.EventApplicationSubmitted:
		subject = "PlagiSmart: nueva solicitud de fumigación"
		body = fmt.Sprintf(
			"Se registró la solicitud %s con %s lote(s) de la empresa %s.\nIngrese al sistema para revisarla.",
			job.Data["application_id"], job.Data["lots"], job.Data["company_id"],
		)
	case notifier.EventStatusChanged:
		subject = fmt.Sprintf("PlagiSmart: fumigación del lote %s ahora en %s", job.Data["lot_number"], job.Data["status"])
		body = fmt.Sprintf("La fumigación %s cambió de estado a %s.", job.Data["fumigation_id"], job.Data["status"])
		if msg := job.Data["message"]; msg != "" {
			body += "\nMotivo: " + msg
		}
	case notifier.EventReportCreated:
		subject = "PlagiSmart: nuevo reporte de campo"
		body = fmt.Sprintf("Se registró el reporte %s para la fumigación %s.", job.Data["report_id"], job.Data["fumigation_id"])
		if status := job.Data["status"]; status != "" {
			body += fmt.Sprintf("\nEstado resultante: %s.", status)
		}
	default:
		subject = "PlagiSmart: notificación"
		body = fmt.Sprintf("Evento: %s", job.Kind)
	}
	return subject, body
}
