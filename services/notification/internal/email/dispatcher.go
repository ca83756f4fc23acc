package email

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/notification/internal/metrics"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
)

// Renderer рендерит шаблон письма по имени
type Renderer interface {
	Render(name string, data any) (string, error)
}

// Message письмо до рендеринга
type Message struct {
	To       string
	Template model.EmailTemplate
	Data     any
}

// Dispatcher рендерит и отправляет письма в фоновых горутинах.
// Ошибки только логируются и считаются, повторов нет.
type Dispatcher struct {
	logger   *zap.Logger
	renderer Renderer
	sender   Sender
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher создаёт диспетчер; timeout ограничивает одну отправку
func NewDispatcher(logger *zap.Logger, renderer Renderer, sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		renderer: renderer,
		sender:   sender,
		timeout:  timeout,
	}
}

// Dispatch ставит письмо в отправку и сразу возвращается.
// Отмена ctx не прерывает отправку, trace context сохраняется.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(context.WithoutCancel(ctx), msg)
	}()
}

// Wait ждёт завершения всех запущенных отправок
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	ctx, span := otel.Tracer("notification/email").Start(ctx, "email.send")
	defer span.End()
	span.SetAttributes(attribute.String("email.template", msg.Template.Name))

	log := observability.L(ctx, d.logger).With(
		zap.String("template", msg.Template.Name),
		zap.String("to", msg.To),
	)

	body, err := d.renderer.Render(msg.Template.Name, msg.Data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		metrics.RecordEmail(msg.Template.Name, metrics.ResultRenderFailed)
		log.Error("failed to render email", zap.Error(err))
		return
	}

	if err := d.sender.Send(ctx, Mail{To: msg.To, Subject: msg.Template.Subject, HTML: body}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		metrics.RecordEmail(msg.Template.Name, metrics.ResultSendFailed)
		log.Error("failed to send email", zap.Error(err))
		return
	}

	metrics.RecordEmail(msg.Template.Name, metrics.ResultSent)
	log.Info("email sent", zap.String("subject", msg.Template.Subject))
}
