package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pankajyadav-dev/ocean/internal/config"
	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/internal/observability"
)

// Dispatcher orchestrates one fan-out pass per hazard event: real-time
// broadcast, ledger-gated authority email, and a concurrent per-recipient
// email/SMS fan-out. Every failure is absorbed and counted; nothing
// propagates to the report-ingestion caller.
type Dispatcher struct {
	broadcast  BroadcastPublisher
	email      ChannelSender
	sms        ChannelSender
	recipients RecipientFinder
	ledger     Ledger
	geocoder   AddressResolver
	cfg        config.NotifyConfig
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewDispatcher(
	broadcast BroadcastPublisher,
	email ChannelSender,
	sms ChannelSender,
	recipients RecipientFinder,
	ledger Ledger,
	geocoder AddressResolver,
	cfg config.NotifyConfig,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Dispatcher {
	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = 10000
	}
	if cfg.ChannelTimeout <= 0 {
		cfg.ChannelTimeout = 5 * time.Second
	}
	return &Dispatcher{
		broadcast:  broadcast,
		email:      email,
		sms:        sms,
		recipients: recipients,
		ledger:     ledger,
		geocoder:   geocoder,
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
	}
}

// Dispatch runs one fan-out pass and returns the aggregated outcome. It
// never panics out and never returns an error: callers treat the whole
// pass as best-effort.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.HazardEvent) (outcome domain.DispatchOutcome) {
	start := time.Now()
	outcome.ReportID = ev.ReportID

	l := d.logger.With(
		slog.String("report_id", ev.ReportID.String()),
		slog.String("kind", string(ev.Kind)),
	)

	defer func() {
		if r := recover(); r != nil {
			l.Error("dispatch panicked", slog.Any("panic", r))
		}
		d.metrics.ObserveDispatch(time.Since(start).Seconds(), outcome.RecipientsFound)
	}()

	// Coordinates are validated upstream; out-of-range here means a caller
	// bug, so fail fast for this event only.
	if ev.Lat < -90 || ev.Lat > 90 || ev.Lng < -180 || ev.Lng > 180 {
		l.Error("dispatch rejected: coordinates out of range",
			slog.Float64("lat", ev.Lat),
			slog.Float64("lng", ev.Lng),
		)
		return outcome
	}

	// Broadcast first: no gating logic, cheapest channel.
	outcome.BroadcastOK = d.sendBroadcast(ctx, ev, l)

	// Scenario: unconfigured email transport is reported once per dispatch,
	// not once per recipient.
	if !d.email.Configured() {
		l.Warn("email channel unconfigured; all email attempts will fail",
			slog.String("remedy", "set SMTP_HOST, SMTP_PORT and SMTP_FROM_ADDRESS"),
		)
	}

	// Address is resolved once and reused by every message in this pass.
	address := d.resolveAddress(ctx, ev, l)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.notifyAuthority(ctx, ev, address, l, &outcome)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.fanOut(ctx, ev, address, l, &outcome)
	}()

	wg.Wait()

	l.Info("dispatch finished",
		slog.Int("recipients_found", outcome.RecipientsFound),
		slog.Bool("broadcast_ok", outcome.BroadcastOK),
		slog.Bool("authority_attempted", outcome.AuthorityAttempted),
		slog.Int("email_sent", outcome.EmailSent),
		slog.Int("email_failed", outcome.EmailFailed),
		slog.Int("sms_sent", outcome.SMSSent),
		slog.Int("sms_failed", outcome.SMSFailed),
		slog.Duration("latency", time.Since(start)),
	)

	return outcome
}

func (d *Dispatcher) sendBroadcast(ctx context.Context, ev domain.HazardEvent, l *slog.Logger) bool {
	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.ChannelTimeout)
	defer cancel()

	if err := d.broadcast.Publish(sendCtx, ev.BroadcastPayload()); err != nil {
		l.Warn("broadcast failed", slog.Any("error", err))
		d.metrics.IncChannelAttempt("broadcast", false)
		return false
	}
	d.metrics.IncChannelAttempt("broadcast", true)
	return true
}

func (d *Dispatcher) resolveAddress(ctx context.Context, ev domain.HazardEvent, l *slog.Logger) string {
	geoCtx, cancel := context.WithTimeout(ctx, d.cfg.ChannelTimeout)
	defer cancel()

	address, err := d.geocoder.ReverseGeocode(geoCtx, ev.Lat, ev.Lng)
	if err != nil {
		// Message formatting falls back to the raw coordinate pair.
		l.Warn("reverse geocode failed, using coordinate fallback", slog.Any("error", err))
		return ""
	}
	return address
}

// notifyAuthority runs the ledger-gated authority email branch. The ledger
// gates only this channel; ledger read failure defaults to "do notify".
func (d *Dispatcher) notifyAuthority(ctx context.Context, ev domain.HazardEvent, address string, l *slog.Logger, outcome *domain.DispatchOutcome) {
	shouldNotify, err := d.ledger.ShouldNotifyAuthority(ctx, ev.Kind, ev.Lat, ev.Lng)
	if err != nil {
		l.Warn("dedup ledger lookup failed, defaulting to notify", slog.Any("error", err))
		shouldNotify = true
	}
	if !shouldNotify {
		l.Info("authority email suppressed: recent incident of same kind in box")
		d.metrics.IncAuthoritySuppressed()
		return
	}

	if d.cfg.AuthorityEmail == "" {
		l.Warn("authority email skipped: no destination configured",
			slog.String("remedy", "set AUTHORITY_EMAIL"),
		)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.ChannelTimeout)
	defer cancel()

	ok := d.email.Send(sendCtx, d.cfg.AuthorityEmail, AuthorityMessage(ev, address))
	outcome.AuthorityAttempted = true
	outcome.AuthorityOK = ok
	d.metrics.IncChannelAttempt("authority_email", ok)

	// The attempt is recorded whether it succeeded or not; failed rows do
	// not suppress, so later reports may retry until one succeeds.
	if err := d.ledger.RecordAttempt(ctx, ev.Kind, ev.Lat, ev.Lng, ev.ReportID, ok); err != nil {
		l.Error("record dedup attempt failed", slog.Any("error", err))
	}
}

// fanOut queries the geospatial index and fires every recipient's channel
// attempts concurrently. A lookup failure means zero recipients, never a
// failed dispatch.
func (d *Dispatcher) fanOut(ctx context.Context, ev domain.HazardEvent, address string, l *slog.Logger, outcome *domain.DispatchOutcome) {
	found, err := d.recipients.FindWithinRadius(ctx, ev.Lat, ev.Lng, d.cfg.RadiusMeters)
	if err != nil {
		l.Error("recipient lookup failed, notifying nobody", slog.Any("error", err))
		return
	}

	outcome.RecipientsFound = len(found)
	if len(found) == 0 {
		return
	}

	msg := ProximityMessage(ev, address)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, rec := range found {
		wg.Add(1)
		go func(rec domain.RecipientProfile) {
			defer wg.Done()

			rl := l.With(slog.String("recipient_id", rec.ID.String()))

			var emailOK, smsOK *bool
			if rec.Email != "" {
				ok := d.sendOne(ctx, d.email, rec.Email, msg)
				d.metrics.IncChannelAttempt("email", ok)
				if !ok {
					rl.Warn("recipient email failed")
				}
				emailOK = &ok
			}
			if rec.Phone != "" {
				ok := d.sendOne(ctx, d.sms, rec.Phone, msg)
				d.metrics.IncChannelAttempt("sms", ok)
				if !ok {
					rl.Warn("recipient sms failed")
				}
				smsOK = &ok
			}

			mu.Lock()
			defer mu.Unlock()
			if emailOK != nil {
				if *emailOK {
					outcome.EmailSent++
				} else {
					outcome.EmailFailed++
				}
			}
			if smsOK != nil {
				if *smsOK {
					outcome.SMSSent++
				} else {
					outcome.SMSFailed++
				}
			}
		}(rec)
	}

	wg.Wait()
}

// sendOne bounds a single channel attempt and absorbs panics from sender
// implementations, converting them into a counted failure.
func (d *Dispatcher) sendOne(ctx context.Context, sender ChannelSender, to string, msg Message) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("channel sender panicked", slog.Any("panic", r))
			ok = false
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.ChannelTimeout)
	defer cancel()

	return sender.Send(sendCtx, to, msg)
}
