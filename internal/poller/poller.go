// Package poller runs the homework status poll loop.
//
// A [Poller] repeats one cycle forever: fetch statuses changed since the
// last seen timestamp, translate the freshest one into a notification
// message, and deliver it to the chat unless it repeats the previous
// message. Any fetch or translation error becomes a chat-visible failure
// message routed through the same duplicate suppression, so the loop never
// stops on a data or network problem. Only context cancellation ends it.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/practicum-tools/homeworkbot/internal/practicum"
)

// Notifier delivers one plain-text message to the fixed destination chat.
type Notifier interface {
	Send(text string) error
}

// state is the process-local poll state. It is owned by a single Poller,
// mutated only between cycles, and lost on restart.
type state struct {
	// lastTimestamp is the from_date cursor, seconds since epoch.
	// Non-decreasing across successful cycles.
	lastTimestamp int64

	// lastMessage is the text of the last successfully delivered message,
	// status or failure alike. Empty until something is sent.
	lastMessage string
}

// Poller owns the poll loop: the API client, the notification sink, the
// retry interval, and the mutable cursor state.
type Poller struct {
	client   *practicum.Client
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger
	state    state
}

// New creates a [Poller]. The cursor starts at the current wall-clock time,
// so only statuses changed after startup are reported. interval is the fixed
// pause between cycles.
func New(client *practicum.Client, notifier Notifier, interval time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		client:   client,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		state:    state{lastTimestamp: time.Now().Unix()},
	}
}

// Run executes poll cycles until ctx is cancelled, then returns nil.
// The first cycle runs immediately; subsequent cycles are paced by the
// retry interval regardless of each cycle's outcome.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started",
		"interval", p.interval.String(),
		"from_date", p.state.lastTimestamp,
	)

	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return nil
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle performs one fetch-validate-translate-deliver iteration. Errors from
// the fetch-translate pipeline are converted into a failure message here;
// they never propagate past the cycle boundary.
func (p *Poller) cycle(ctx context.Context) {
	log := p.logger.With("cycle_id", uuid.NewString())

	message, next, err := p.poll(ctx, log)
	if err != nil {
		log.Error("poll cycle failed", "error", err, "from_date", p.state.lastTimestamp)
		message = fmt.Sprintf("Program failure: %v", err)
	} else if next > p.state.lastTimestamp {
		p.state.lastTimestamp = next
	}

	p.deliver(log, message)
}

// poll runs the fetch-validate-translate pipeline. It returns the message to
// deliver (empty when nothing changed) and the cursor value to advance to
// (zero when the answer carried no current_date).
func (p *Poller) poll(ctx context.Context, log *slog.Logger) (message string, next int64, err error) {
	answer, err := p.client.Fetch(ctx, p.state.lastTimestamp)
	if err != nil {
		return "", 0, err
	}
	log.Debug("answer received", "homeworks", len(answer.Homeworks))

	if answer.HasDate {
		next = answer.CurrentDate
	}

	if len(answer.Homeworks) == 0 {
		log.Info("no fresh homework statuses")
		return "", next, nil
	}

	// the list is newest-first; only the freshest change is reported
	message, err = practicum.ParseStatus(answer.Homeworks[0])
	if err != nil {
		return "", 0, err
	}
	return message, next, nil
}

// deliver sends message unless it is empty or repeats the previously
// delivered text. lastMessage advances only on successful delivery, so a
// failed send is retried next time the same message comes up.
func (p *Poller) deliver(log *slog.Logger, message string) {
	if message == "" {
		return
	}
	if message == p.state.lastMessage {
		log.Info("duplicate message suppressed")
		return
	}
	if err := p.notifier.Send(message); err != nil {
		log.Error("delivery failed", "error", err)
		return
	}
	p.state.lastMessage = message
	log.Info("message sent", "text", message)
}
