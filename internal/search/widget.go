package search

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sais189/travelex/internal/models"
)

// DefaultBlurDelay keeps the overlay open long enough after blur for a
// pointer click on a result to land.
const DefaultBlurDelay = 200 * time.Millisecond

// Source supplies the destination list fetched on mount.
type Source interface {
	FindAll(ctx context.Context) ([]models.Destination, error)
}

// Option configures a Widget.
type Option func(*Widget)

// WithBlurDelay overrides DefaultBlurDelay.
func WithBlurDelay(d time.Duration) Option {
	return func(w *Widget) { w.blurDelay = d }
}

// WithMeasure sets how the anchor geometry is read when the overlay opens.
func WithMeasure(fn MeasureFunc) Option {
	return func(w *Widget) { w.measure = fn }
}

// WithOnChange registers a callback receiving every new View, including the
// ones caused by the fetch completing or the blur delay expiring. The
// callback runs while the widget serializes notifications and must not call
// back into the widget's mutators; doing so deadlocks. View and Open are safe.
func WithOnChange(fn func(View)) Option {
	return func(w *Widget) { w.onChange = fn }
}

// WithLogger sets the log entry used for fetch diagnostics.
func WithLogger(entry *logrus.Entry) Option {
	return func(w *Widget) { w.log = entry }
}

// Widget is one mounted destination search dropdown. The overlay is open
// exactly when the input is focused and the query is non-empty.
type Widget struct {
	source    Source
	nav       Navigator
	measure   MeasureFunc
	onChange  func(View)
	blurDelay time.Duration
	log       *logrus.Entry

	// notifyMu keeps notifications in the order of the changes behind them.
	notifyMu sync.Mutex

	mu           sync.Mutex
	destinations []models.Destination
	query        string
	country      string
	focused      bool
	placement    Placement
	blurTimer    *time.Timer
	blurSeq      uint64
	cancel       context.CancelFunc
	unmounted    bool
}

// New creates a closed widget with an empty list.
func New(source Source, nav Navigator, opts ...Option) *Widget {
	w := &Widget{
		source:    source,
		nav:       nav,
		blurDelay: DefaultBlurDelay,
		country:   AllCountries,
		log:       logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mount starts fetching the destination list in the background. Until it
// arrives the widget behaves as if the list were empty.
func (w *Widget) Mount(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()
	go w.Load(ctx)
}

// Load fetches the destination list and publishes it. A failed fetch leaves
// the list empty.
func (w *Widget) Load(ctx context.Context) {
	destinations, err := w.source.FindAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			w.log.WithError(err).Debug("Destination fetch cancelled")
		} else {
			w.log.WithError(err).Warn("Destination fetch failed; showing an empty list")
		}
		destinations = nil
	}
	w.update(func() string {
		w.destinations = destinations
		return ""
	})
}

// Unmount stops the pending fetch and blur timer. Later events are ignored.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted {
		return
	}
	w.unmounted = true
	w.stopBlurLocked()
	if w.cancel != nil {
		w.cancel()
	}
}

// Focus marks the input focused and cancels a pending blur.
func (w *Widget) Focus() View {
	return w.update(func() string {
		w.stopBlurLocked()
		w.focused = true
		return ""
	})
}

// Blur schedules the loss of focus after the blur delay.
func (w *Widget) Blur() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted || !w.focused {
		return
	}
	w.stopBlurLocked()
	seq := w.blurSeq
	w.blurTimer = time.AfterFunc(w.blurDelay, func() { w.finishBlur(seq) })
}

func (w *Widget) finishBlur(seq uint64) {
	w.update(func() string {
		if seq != w.blurSeq {
			return ""
		}
		w.blurTimer = nil
		w.focused = false
		return ""
	})
}

// Input replaces the query text.
func (w *Widget) Input(query string) View {
	return w.update(func() string {
		w.query = query
		return ""
	})
}

// SelectCountry sets the country restriction; AllCountries lifts it.
func (w *Widget) SelectCountry(country string) View {
	return w.update(func() string {
		if country == "" {
			country = AllCountries
		}
		w.country = country
		return ""
	})
}

// Select clears the query, closes the overlay and navigates to the
// destination's detail page. Only destinations currently listed in the open
// overlay can be selected; anything else is ignored.
func (w *Widget) Select(id int) View {
	return w.update(func() string {
		if w.openLocked() {
			for _, d := range w.viewLocked().Results {
				if d.ID == id {
					w.dismissLocked()
					return DetailPath(id)
				}
			}
		}
		w.log.WithField("destination_id", id).Debug("Ignoring selection of a destination not on display")
		return ""
	})
}

// ViewAll clears the query, closes the overlay and navigates to the full
// listing.
func (w *Widget) ViewAll() View {
	return w.update(func() string {
		w.dismissLocked()
		return ListingPath
	})
}

// View returns the current state.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

// Open reports whether the overlay is showing.
func (w *Widget) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.openLocked()
}

// update runs change under the state lock, places the overlay when it has
// just opened, then publishes the view and performs any navigation change
// asked for.
func (w *Widget) update(change func() (navigateTo string)) View {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()

	w.mu.Lock()
	if w.unmounted {
		view := w.viewLocked()
		w.mu.Unlock()
		return view
	}
	wasOpen := w.openLocked()
	path := change()
	if !wasOpen && w.openLocked() {
		w.placement = w.place()
	}
	view := w.viewLocked()
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange(view)
	}
	if path != "" && w.nav != nil {
		w.nav.Navigate(path)
	}
	return view
}

// dismissLocked closes the overlay by clearing the query. A pending blur is
// left running so focus still drops once the click is done.
func (w *Widget) dismissLocked() {
	w.query = ""
}

// stopBlurLocked cancels the blur timer and invalidates a callback that may
// already be waiting for the lock.
func (w *Widget) stopBlurLocked() {
	if w.blurTimer != nil {
		w.blurTimer.Stop()
		w.blurTimer = nil
	}
	w.blurSeq++
}

func (w *Widget) openLocked() bool {
	return w.focused && len(w.query) > 0
}

func (w *Widget) place() Placement {
	if w.measure == nil {
		return Placement{}
	}
	anchor, viewport, ok := w.measure()
	if !ok {
		return Placement{}
	}
	return Place(anchor, viewport)
}

func (w *Widget) viewLocked() View {
	view := View{
		Query:     w.query,
		Country:   w.country,
		Countries: Countries(w.destinations),
		Open:      w.openLocked(),
		Results:   []models.Destination{},
	}
	if view.Open {
		render(&view, w.destinations, w.query, w.country, w.placement)
	}
	return view
}
