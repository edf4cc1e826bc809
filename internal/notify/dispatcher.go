package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/adapter/mailer"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/metrics"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultReason is shown when a rejection or cancellation carries no reason.
const DefaultReason = "No reason specified"

// OwnerCancelSubject is the subject of the self-cancellation receipt.
const OwnerCancelSubject = "Order Cancelled by User"

type message struct {
	subject  string
	template string
	footer   string
	// explains marks templates that always print a reason, falling back to DefaultReason.
	explains bool
}

var statusMessages = map[model.OrderStatus]message{
	model.OrderStatusAccepted: {
		subject:  "Your Order Has Been Accepted",
		template: "accepted",
		footer:   "You can view your order updates anytime under 'My Orders'.",
	},
	model.OrderStatusRejected: {
		subject:  "Your Order Has Been Rejected",
		template: "rejected",
		footer:   "We appreciate your interest.",
		explains: true,
	},
	model.OrderStatusInProgress: {
		subject:  "Your Order Is In Progress",
		template: "in_progress",
		footer:   "Track your order under 'My Orders' anytime.",
	},
	model.OrderStatusCompleted: {
		subject:  "Your Order Is Complete",
		template: "completed",
		footer:   "Thank you for being part of this artistic journey.",
	},
	model.OrderStatusCancelled: {
		subject:  "Your Order Has Been Cancelled",
		template: "cancelled",
		footer:   "We hope to create something for you soon!",
		explains: true,
	},
}

type view struct {
	Studio   string
	Title    string
	UserName string
	Reason   string
	Note     string
	Footer   string
	Year     int
	Body     template.HTML
}

// Dispatcher renders order emails and hands them to a Mailer.
type Dispatcher struct {
	mailer  mailer.Mailer
	studio  string
	tmpl    *template.Template
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewDispatcher parses the embedded templates.
func NewDispatcher(m mailer.Mailer, studio string, mtr *metrics.Metrics, logger *zap.Logger) (*Dispatcher, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	if studio == "" {
		studio = "Atelier"
	}
	return &Dispatcher{
		mailer:  m,
		studio:  studio,
		tmpl:    tmpl,
		metrics: mtr,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// OrderStatusChanged emails the order owner about an admin status change.
// Statuses without a template (pending) send nothing.
func (d *Dispatcher) OrderStatusChanged(ctx context.Context, order model.Order, status model.OrderStatus, reason string) error {
	msg, ok := statusMessages[status]
	if !ok {
		return nil
	}
	return d.dispatch(ctx, order, msg, msg.subject, reason)
}

// OrderCancelledByOwner sends the owner a receipt for their own cancellation.
func (d *Dispatcher) OrderCancelledByOwner(ctx context.Context, order model.Order, reason string) error {
	msg := statusMessages[model.OrderStatusCancelled]
	return d.dispatch(ctx, order, msg, OwnerCancelSubject, reason)
}

func (d *Dispatcher) dispatch(ctx context.Context, order model.Order, msg message, subject, reason string) error {
	if order.UserEmail == "" {
		d.logger.Info("order owner has no email, notification skipped",
			zap.String("order_id", order.ID), zap.String("template", msg.template))
		return nil
	}

	body, err := d.render(order, msg, subject, reason)
	if err != nil {
		return err
	}
	err = d.mailer.Send(ctx, order.UserEmail, subject, body)
	d.metrics.Notification(msg.template, err)
	if err != nil {
		return fmt.Errorf("notify %s: %w", msg.template, err)
	}
	return nil
}

func (d *Dispatcher) render(order model.Order, msg message, title, reason string) (string, error) {
	v := view{
		Studio:   d.studio,
		Title:    title,
		UserName: order.UserName,
		Footer:   msg.footer,
		Year:     d.now().Year(),
	}
	reason = strings.TrimSpace(reason)
	switch {
	case !msg.explains:
		v.Note = reason
	case reason == "":
		v.Reason = DefaultReason
	default:
		v.Reason = reason
	}

	var content bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&content, msg.template, v); err != nil {
		return "", fmt.Errorf("render %s: %w", msg.template, err)
	}
	// content was produced by html/template, so it is already escaped.
	v.Body = template.HTML(content.String())

	var page bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&page, "layout", v); err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return page.String(), nil
}
