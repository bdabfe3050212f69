// Package scheduler envía por WhatsApp el reporte del mes anterior según una expresión cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/chopp-api/internal/domain/report"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// Interpreter genera el texto del reporte (chatbot.Interpreter).
type Interpreter interface {
	Interpret(ctx context.Context, raw string) string
}

// Sender entrega el mensaje (twilio.Client).
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Scheduler ejecuta el envío mensual del reporte.
type Scheduler struct {
	cron        *cron.Cron
	spec        string
	recipient   string
	interpreter Interpreter
	sender      Sender
	log         *logger.Logger
	now         func() time.Time
}

// New construye el scheduler. spec es una expresión cron de 5 campos (ej. "0 9 1 * *").
func New(spec, recipient string, interpreter Interpreter, sender Sender, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		spec:        spec,
		recipient:   recipient,
		interpreter: interpreter,
		sender:      sender,
		log:         log.Component("scheduler"),
		now:         time.Now,
	}
}

// Start registra el job y arranca el cron. Expresión inválida → error.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runMonthlyReport); err != nil {
		return fmt.Errorf("scheduler: expresión cron %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Str("recipient", s.recipient).Msg("reporte mensual programado")
	return nil
}

// Stop detiene el cron y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runMonthlyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := s.SendMonthlyReport(ctx); err != nil {
		s.log.Error().Err(err).Msg("envío del reporte mensual")
	}
}

// SendMonthlyReport envía el reporte del mes anterior al actual.
func (s *Scheduler) SendMonthlyReport(ctx context.Context) error {
	today := s.now()
	month, year := report.PriorMonth(int(today.Month()), today.Year())
	body := s.interpreter.Interpret(ctx, fmt.Sprintf("relatorio %d %d", month, year))
	if err := s.sender.Send(ctx, s.recipient, body); err != nil {
		return err
	}
	s.log.Info().Int("month", month).Int("year", year).Msg("reporte mensual enviado")
	return nil
}
