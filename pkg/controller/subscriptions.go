package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var subscriptionsLogger = common.GetLoggerWith(common.LoggerNameController, zap.String(common.LoggerFieldCategory, common.LoggerCategorySubscription))

// DefaultDebounceWindow is how long a threshold slider has to go quiet
// before its value is transmitted.
const DefaultDebounceWindow = 500 * time.Millisecond

// thresholdDebounce tracks one subscription's pending slider value.
// Every edit overwrites value and re-arms the timer, so only the last
// value of a burst goes out.
type thresholdDebounce struct {
	timer *time.Timer
	value int
}

// Subscriptions drives the subscription settings view. The active and
// email toggles transmit immediately; the alert threshold shows its
// clamped value right away but transmits only after the debounce
// window passes without another edit. Per-field in-flight flags keep
// one field's save from blocking another's.
type Subscriptions struct {
	api            API
	debounceWindow time.Duration

	mu        sync.Mutex
	subs      []models.Subscription
	pending   map[uint]*thresholdDebounce
	inFlight  map[string]bool
	loadGen   uint64
	closed    bool
	closeWait sync.WaitGroup
}

// NewSubscriptions builds the controller. A zero debounceWindow means
// DefaultDebounceWindow.
func NewSubscriptions(api API, debounceWindow time.Duration) *Subscriptions {
	if debounceWindow <= 0 {
		debounceWindow = DefaultDebounceWindow
	}
	return &Subscriptions{
		api:            api,
		debounceWindow: debounceWindow,
		pending:        make(map[uint]*thresholdDebounce),
		inFlight:       make(map[string]bool),
	}
}

func inFlightKey(id uint, field string) string {
	return fmt.Sprintf("%s/%d", field, id)
}

// Load fetches the caller's subscriptions. Overlapping loads resolve
// in favor of the most recently started one.
func (sc *Subscriptions) Load(ctx context.Context) error {
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return ErrClosed
	}
	sc.loadGen++
	gen := sc.loadGen
	sc.mu.Unlock()

	subs, err := sc.api.MySubscriptions(ctx)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if gen != sc.loadGen || sc.closed {
		return nil
	}
	if err != nil {
		subscriptionsLogger.Warn("Load failed", zap.Error(err))
		return err
	}
	sc.subs = subs
	return nil
}

// Subscriptions returns a snapshot of the loaded list. A pending
// threshold edit is visible in its subscription immediately, before it
// has been transmitted.
func (sc *Subscriptions) Subscriptions() []models.Subscription {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	out := make([]models.Subscription, len(sc.subs))
	copy(out, sc.subs)
	return out
}

// InFlight reports whether the named field of a subscription has a
// save on the wire. Fields are "active", "email" and "threshold".
func (sc *Subscriptions) InFlight(id uint, field string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.inFlight[inFlightKey(id, field)]
}

func (sc *Subscriptions) find(id uint) (int, bool) {
	for i := range sc.subs {
		if sc.subs[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (sc *Subscriptions) replace(updated *models.Subscription) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if i, ok := sc.find(updated.ID); ok {
		sc.subs[i] = *updated
	}
}

// SetActive transmits immediately and replaces the local entry with
// the server's copy on success.
func (sc *Subscriptions) SetActive(ctx context.Context, id uint, isActive bool) error {
	key := inFlightKey(id, "active")
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return ErrClosed
	}
	if _, ok := sc.find(id); !ok {
		sc.mu.Unlock()
		return ErrUnknownSubscription
	}
	sc.inFlight[key] = true
	sc.mu.Unlock()

	updated, err := sc.api.SetSubscriptionActive(ctx, id, isActive)

	sc.mu.Lock()
	delete(sc.inFlight, key)
	sc.mu.Unlock()

	if err != nil {
		subscriptionsLogger.Warn("Toggling active failed", zap.Uint("subscription_id", id), zap.Error(err))
		return err
	}
	sc.replace(updated)
	return nil
}

// SetEmailNotifications transmits immediately, like SetActive.
func (sc *Subscriptions) SetEmailNotifications(ctx context.Context, id uint, enabled bool) error {
	key := inFlightKey(id, "email")
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return ErrClosed
	}
	if _, ok := sc.find(id); !ok {
		sc.mu.Unlock()
		return ErrUnknownSubscription
	}
	sc.inFlight[key] = true
	sc.mu.Unlock()

	updated, err := sc.api.SetEmailNotifications(ctx, id, enabled)

	sc.mu.Lock()
	delete(sc.inFlight, key)
	sc.mu.Unlock()

	if err != nil {
		subscriptionsLogger.Warn("Toggling email failed", zap.Uint("subscription_id", id), zap.Error(err))
		return err
	}
	sc.replace(updated)
	return nil
}

// SetAlertThreshold clamps the value, shows it locally right away and
// arms (or re-arms) the debounce timer. Only the value standing when
// the window elapses is transmitted.
func (sc *Subscriptions) SetAlertThreshold(id uint, value int) error {
	value = models.ClampAlertThreshold(value)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.closed {
		return ErrClosed
	}
	i, ok := sc.find(id)
	if !ok {
		return ErrUnknownSubscription
	}

	sc.subs[i].AlertThreshold = value

	if d, exists := sc.pending[id]; exists {
		d.value = value
		d.timer.Reset(sc.debounceWindow)
		return nil
	}

	d := &thresholdDebounce{value: value}
	d.timer = time.AfterFunc(sc.debounceWindow, func() {
		sc.fireThreshold(id)
	})
	sc.pending[id] = d
	return nil
}

// fireThreshold transmits the pending value for one subscription.
func (sc *Subscriptions) fireThreshold(id uint) {
	sc.mu.Lock()
	d, ok := sc.pending[id]
	if !ok || sc.closed {
		sc.mu.Unlock()
		return
	}
	delete(sc.pending, id)
	value := d.value
	key := inFlightKey(id, "threshold")
	sc.inFlight[key] = true
	sc.closeWait.Add(1)
	sc.mu.Unlock()

	defer sc.closeWait.Done()

	updated, err := sc.api.SetAlertThreshold(context.Background(), id, value)

	sc.mu.Lock()
	delete(sc.inFlight, key)
	sc.mu.Unlock()

	if err != nil {
		subscriptionsLogger.Warn("Saving threshold failed", zap.Uint("subscription_id", id), zap.Error(err))
		return
	}
	sc.replace(updated)
}

// Flush transmits every pending threshold immediately instead of
// waiting out the debounce window.
func (sc *Subscriptions) Flush() {
	sc.mu.Lock()
	ids := make([]uint, 0, len(sc.pending))
	for id, d := range sc.pending {
		d.timer.Stop()
		ids = append(ids, id)
	}
	sc.mu.Unlock()

	for _, id := range ids {
		sc.fireThreshold(id)
	}
}

// Unsubscribe requires an explicit confirmation. Any pending threshold
// edit for the subscription is dropped with it.
func (sc *Subscriptions) Unsubscribe(ctx context.Context, id uint, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return ErrClosed
	}
	if _, ok := sc.find(id); !ok {
		sc.mu.Unlock()
		return ErrUnknownSubscription
	}
	if d, exists := sc.pending[id]; exists {
		d.timer.Stop()
		delete(sc.pending, id)
	}
	sc.mu.Unlock()

	if err := sc.api.Unsubscribe(ctx, id); err != nil {
		subscriptionsLogger.Warn("Unsubscribe failed", zap.Uint("subscription_id", id), zap.Error(err))
		return err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.subs = common.Filter(sc.subs, func(s models.Subscription) bool {
		return s.ID != id
	})
	return nil
}

// Close stops every pending debounce timer without transmitting and
// makes the controller inert. It waits for transmissions already on
// the wire to finish.
func (sc *Subscriptions) Close() {
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return
	}
	sc.closed = true
	for id, d := range sc.pending {
		d.timer.Stop()
		delete(sc.pending, id)
	}
	sc.mu.Unlock()

	sc.closeWait.Wait()
}
