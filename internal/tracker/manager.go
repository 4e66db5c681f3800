package tracker

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ninfea/babylog/internal/config"
	"github.com/ninfea/babylog/internal/eventlog"
	"github.com/ninfea/babylog/internal/metrics"
	"github.com/ninfea/babylog/internal/repository"
	"github.com/ninfea/babylog/internal/telegram"
)

const (
	commandStart = "start"
	commandCSV   = "csv"
)

// pendingInteraction is the per-user picker state: which event kind was
// chosen, the anchor time offsets resolve against, and whether the next
// free-text message should be parsed as a custom timestamp.
type pendingInteraction struct {
	kind           EventKind
	baseTime       time.Time
	awaitingCustom bool
}

type actor struct {
	id   int64
	name string
}

// Manager dispatches transport events into the nap state machine and the
// sinks. The update loop delivers events one at a time, but the session and
// pending maps are still mutex-guarded so the read-modify-write stays atomic
// if handlers are ever dispatched concurrently.
type Manager struct {
	cfg      *config.Config
	loc      *time.Location
	telegram telegram.Client
	log      eventlog.Appender
	metrics  metrics.Writer
	repo     repository.Repository
	resolver *Resolver
	nap      *NapSession

	mu      sync.Mutex
	pending map[int64]*pendingInteraction
}

func NewManager(cfg *config.Config, loc *time.Location, tc telegram.Client, log eventlog.Appender, mw metrics.Writer, repo repository.Repository) *Manager {
	return &Manager{
		cfg:      cfg,
		loc:      loc,
		telegram: tc,
		log:      log,
		metrics:  mw,
		repo:     repo,
		resolver: NewResolver(loc),
		nap:      &NapSession{},
		pending:  make(map[int64]*pendingInteraction),
	}
}

// RestoreState seeds the nap session from the history store so an active
// nap survives a process restart. Best-effort: on any failure the session
// simply starts empty.
func (m *Manager) RestoreState(ctx context.Context) {
	open, err := m.repo.GetOpenNap(ctx)
	if err != nil {
		slog.Error("failed to query open nap from history", "error", err)
		return
	}
	last, err := m.repo.GetLastNapStart(ctx)
	if err != nil {
		slog.Error("failed to query last nap start from history", "error", err)
		return
	}
	var active *time.Time
	if open != nil {
		active = &open.StartedAt
	}
	m.nap.Restore(active, last)
	if active != nil {
		slog.Info("restored active nap from history", "started_at", active)
	}
}

func (m *Manager) HandleMessage(ev telegram.MessageEvent) {
	if !m.cfg.IsAuthorized(ev.UserID) {
		if ev.Command == commandStart {
			m.send(ev.Reply, messageAccessDenied)
		}
		slog.Info("ignoring message from unauthorized user", "user_id", ev.UserID)
		return
	}

	switch ev.Command {
	case commandStart:
		m.send(ev.Reply, messageGreeting)
		return
	case commandCSV:
		m.handleCSVExport(ev)
		return
	case "":
	default:
		return
	}

	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return
	}

	// Selecting a new event kind always wins: it silently discards any
	// pending interaction, including a pending custom-time prompt.
	if kind, ok := KindForLabel(text); ok {
		m.handleEventSelection(ev, kind)
		return
	}

	m.mu.Lock()
	p, ok := m.pending[ev.UserID]
	awaiting := ok && p.awaitingCustom
	var pendingKind EventKind
	if awaiting {
		pendingKind = p.kind
	}
	m.mu.Unlock()

	if awaiting {
		stamp, err := m.resolver.ParseCustom(text)
		if err != nil {
			// Recoverable: re-prompt, pending interaction preserved.
			m.send(ev.Reply, messageCustomParseFailed)
			return
		}
		m.clearPending(ev.UserID)
		m.finalize(actor{id: ev.UserID, name: ev.DisplayName}, pendingKind, stamp, ev.Reply)
		return
	}
	// Anything else: ignore.
}

func (m *Manager) handleEventSelection(ev telegram.MessageEvent, kind EventKind) {
	// Nap guards run before the picker is shown: a duplicate start or an
	// end with no active nap can be answered without resolving a time.
	if kind == EventNapStart {
		if existing := m.nap.ActiveStart(); existing != nil {
			m.send(ev.Reply, duplicateNapStartMessage(*existing, m.loc))
			return
		}
	}
	if kind == EventNapEnd {
		if m.nap.ActiveStart() == nil {
			m.send(ev.Reply, noActiveNapMessage(m.nap.LastStart(), m.loc))
			return
		}
	}

	base := m.resolver.Now()
	m.mu.Lock()
	m.pending[ev.UserID] = &pendingInteraction{kind: kind, baseTime: base}
	m.mu.Unlock()
	slog.Info("event kind selected", "user_id", ev.UserID, "kind", kind, "base_time", base)

	if err := ev.ReplyInline(pickerPrompt(kind, base, m.loc), TimePickerRows()); err != nil {
		slog.Error("failed to send time picker", "error", err, "user_id", ev.UserID)
	}
}

func (m *Manager) HandleCallback(ev telegram.CallbackEvent) {
	if !m.cfg.IsAuthorized(ev.UserID) {
		slog.Info("ignoring callback from unauthorized user", "user_id", ev.UserID)
		return
	}

	m.mu.Lock()
	p, ok := m.pending[ev.UserID]
	m.mu.Unlock()
	if !ok {
		m.send(ev.Edit, messageSessionExpired)
		return
	}

	act := actor{id: ev.UserID, name: ev.DisplayName}
	switch {
	case ev.Data == callbackNow:
		m.clearPending(ev.UserID)
		m.finalize(act, p.kind, m.resolver.Now(), ev.Edit)
	case strings.HasPrefix(ev.Data, callbackOffsetPrefix):
		minutes, err := strconv.Atoi(strings.TrimPrefix(ev.Data, callbackOffsetPrefix))
		if err != nil {
			m.clearPending(ev.UserID)
			m.send(ev.Edit, messageInvalidOffset)
			return
		}
		m.clearPending(ev.UserID)
		m.finalize(act, p.kind, m.resolver.Offset(p.baseTime, minutes), ev.Edit)
	case ev.Data == callbackCustom:
		m.mu.Lock()
		p.awaitingCustom = true
		m.mu.Unlock()
		m.send(ev.Edit, customPrompt(m.cfg.Timezone))
	default:
		m.clearPending(ev.UserID)
		m.send(ev.Edit, messageUnknownOption)
	}
}

func (m *Manager) finalize(act actor, kind EventKind, stamp time.Time, confirm func(string) error) {
	stamp = stamp.In(m.loc)
	switch kind {
	case EventNapStart:
		m.finalizeNapStart(act, stamp, confirm)
	case EventNapEnd:
		m.finalizeNapEnd(act, stamp, confirm)
	default:
		m.finalizeSimple(act, kind, stamp, confirm)
	}
}

func (m *Manager) finalizeSimple(act actor, kind EventKind, stamp time.Time, confirm func(string) error) {
	m.appendLog(stamp, kind, act)
	m.mirrorEvent(stamp, kind, act)
	if err := m.metrics.WriteEvent(context.Background(), metrics.EventPoint{
		Kind:    string(kind),
		Actor:   act.name,
		ActorID: act.id,
		At:      stamp,
	}); err != nil {
		slog.Error("failed to write event metric", "error", err, "kind", kind)
	}
	m.deliver(confirmationText(kind, act.name, stamp, m.loc), act.id, confirm)
}

func (m *Manager) finalizeNapStart(act actor, stamp time.Time, confirm func(string) error) {
	res := m.nap.Start(stamp)
	if !res.Started {
		// Idempotent-by-rejection: no log row, no state change.
		slog.Info("duplicate nap start rejected", "user_id", act.id, "existing_start", res.Start)
		m.deliver(duplicateNapStartMessage(res.Start, m.loc), act.id, confirm)
		return
	}

	m.appendLog(stamp, EventNapStart, act)
	m.mirrorEvent(stamp, EventNapStart, act)
	if _, err := m.repo.OpenNap(context.Background(), repository.OpenNapInput{
		StartedAt: stamp,
		StartedBy: act.name,
	}); err != nil {
		slog.Error("failed to open nap in history", "error", err)
	}
	slog.Info("nap started", "user_id", act.id, "start", stamp)
	m.deliver(napStartedMessage(act.name, stamp, m.loc), act.id, confirm)
}

func (m *Manager) finalizeNapEnd(act actor, stamp time.Time, confirm func(string) error) {
	res := m.nap.End(stamp)
	switch res.Status {
	case NapEndNoActive:
		m.deliver(noActiveNapMessage(res.LastStart, m.loc), act.id, confirm)
		return
	case NapEndBeforeStart:
		slog.Info("nap end rejected: before start", "user_id", act.id, "start", res.Start, "stop", stamp)
		m.deliver(chronologyErrorMessage(res.Start, stamp, m.loc), act.id, confirm)
		return
	}

	// The nap is closed from here on; every downstream write is
	// best-effort and never rolls the transition back.
	m.appendLog(stamp, EventNapEnd, act)
	m.mirrorEvent(stamp, EventNapEnd, act)
	if err := m.repo.CloseOpenNap(context.Background(), repository.CloseNapInput{
		EndedAt:         stamp,
		EndedBy:         act.name,
		DurationSeconds: res.DurationSeconds,
	}); err != nil {
		slog.Error("failed to close nap in history", "error", err)
	}
	if err := m.metrics.WriteNap(context.Background(), metrics.NapMetric{
		Actor:           act.name,
		ActorID:         act.id,
		Start:           res.Start,
		Stop:            res.Stop,
		DurationSeconds: res.DurationSeconds,
	}); err != nil {
		slog.Error("failed to write nap metric", "error", err)
	} else {
		slog.Info("nap metric written", "user_id", act.id, "duration_seconds", res.DurationSeconds)
	}
	m.deliver(napSavedMessage(act.name, res.Start, res.Stop, res.DurationSeconds, m.loc), act.id, confirm)
}

func (m *Manager) handleCSVExport(ev telegram.MessageEvent) {
	data, err := m.log.Export()
	if err != nil {
		slog.Error("failed to export log", "error", err, "user_id", ev.UserID)
		m.send(ev.Reply, messageExportFailed)
		return
	}
	if len(data) == 0 {
		m.send(ev.Reply, messageNoDataYet)
		return
	}
	if err := m.telegram.SendDocument(telegram.Document{
		ChatID:   ev.UserID,
		Caption:  csvExportCaption,
		Filename: csvExportFilename,
		FileBody: data,
	}); err != nil {
		slog.Error("failed to send log export", "error", err, "user_id", ev.UserID)
	}
}

func (m *Manager) appendLog(stamp time.Time, kind EventKind, act actor) {
	if err := m.log.Append(eventlog.Record{
		Timestamp: stamp,
		Kind:      string(kind),
		Actor:     act.name,
	}); err != nil {
		slog.Error("failed to append log record", "error", err, "kind", kind)
	}
}

func (m *Manager) mirrorEvent(stamp time.Time, kind EventKind, act actor) {
	if err := m.repo.InsertEvent(context.Background(), repository.InsertEventInput{
		OccurredAt: stamp,
		Kind:       string(kind),
		Actor:      act.name,
		ActorID:    act.id,
	}); err != nil {
		slog.Error("failed to mirror event to history", "error", err, "kind", kind)
	}
}

// deliver confirms to the acting user and broadcasts the same text to every
// other authorized user. One recipient failing never stops the rest.
func (m *Manager) deliver(text string, actorID int64, confirm func(string) error) {
	m.broadcast(text, actorID)
	m.send(confirm, text)
}

func (m *Manager) broadcast(text string, excludeUserID int64) {
	for _, uid := range m.cfg.AuthorizedIDs {
		if uid == excludeUserID {
			continue
		}
		if err := m.telegram.SendMessage(uid, text); err != nil {
			slog.Error("failed to broadcast", "error", err, "user_id", uid)
		}
	}
}

func (m *Manager) send(deliver func(string) error, text string) {
	if err := deliver(text); err != nil {
		slog.Error("failed to deliver message", "error", err)
	}
}

func (m *Manager) clearPending(userID int64) {
	m.mu.Lock()
	delete(m.pending, userID)
	m.mu.Unlock()
}
