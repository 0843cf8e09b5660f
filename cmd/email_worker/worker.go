package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/pkg/mailer"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
	outcomeDrop
)

type worker struct {
	sender  mailer.Sender
	logger  logrus.FieldLogger
	timeout time.Duration
}

// handle decodes and delivers one queued job. Malformed or unrenderable jobs are dropped,
// transport failures are retried.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		return outcomeDrop
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	err := mailer.Deliver(c, w.sender, job)
	switch {
	case err == nil:
		w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
		return outcomeAck
	case errors.Is(err, mailer.ErrUndeliverable):
		w.logger.WithError(err).WithField("template", job.Template).Warn("dropping email job")
		return outcomeDrop
	default:
		w.logger.WithError(err).WithField("to", job.To).Error("send failed")
		return outcomeRetry
	}
}
