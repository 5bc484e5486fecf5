// Package announce turns engine events into short player-facing lines and
// logs them. It only observes; nothing it does reaches back into an engine.
package announce

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

//go:embed locales/en.po
var enPO []byte

// lookup resolves message ids chosen at runtime, which vet's printf check
// would otherwise reject as non-constant format strings.
var lookup = (*gotext.Po).Get

// Catalog maps events to translated text.
type Catalog struct {
	po *gotext.Po
}

// NewCatalog parses a gettext PO document.
func NewCatalog(po []byte) *Catalog {
	p := gotext.NewPo()
	p.Parse(po)
	return &Catalog{po: p}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in English catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog(enPO)
	})
	return defaultCatalog
}

// Text returns the line for ev, or "" for events that are not narrated
// (clock ticks, raw cell and score updates, plain moves, flips).
func (c *Catalog) Text(ev core.Event) string {
	switch ev.Kind {
	case core.EventTick, core.EventMoved, core.EventFlip, core.EventUnflip,
		core.EventCellChanged, core.EventScoreChanged, core.EventHintCleared:
		return ""
	case core.EventKeyCollected:
		if ev.Count == 0 {
			return c.po.Get("key-collected-last")
		}
		return fmt.Sprintf(c.po.Get("key-collected"), ev.Count)
	case core.EventWon:
		if ev.Game == "memory" {
			return fmt.Sprintf(c.po.Get("memory-won"), ev.Score)
		}
		return fmt.Sprintf(c.po.Get("won"), ev.Elapsed)
	case core.EventSolved:
		return fmt.Sprintf(c.po.Get("solved"), ev.Elapsed)
	case core.EventSwap:
		return fmt.Sprintf(c.po.Get("swap"), ev.Count)
	case core.EventHint:
		return fmt.Sprintf(c.po.Get("hint"), ev.Index+1)
	default:
		return lookup(c.po, string(ev.Kind))
	}
}

// Announcer logs narrated events.
type Announcer struct {
	logger  *log.Logger
	catalog *Catalog
}

// New creates an announcer. A nil catalog means Default().
func New(logger *log.Logger, catalog *Catalog) *Announcer {
	if catalog == nil {
		catalog = Default()
	}
	return &Announcer{logger: logger, catalog: catalog}
}

// Attach subscribes to bus and returns the unsubscribe function.
func (a *Announcer) Attach(bus *core.Bus) func() {
	return bus.Subscribe(a.handle)
}

func (a *Announcer) handle(ev core.Event) {
	text := a.catalog.Text(ev)
	if text == "" {
		a.logger.Debug("event", "game", ev.Game, "kind", ev.Kind, "score", ev.Score)
		return
	}
	if ev.Kind.Terminal() {
		a.logger.Info(text, "game", ev.Game, "kind", ev.Kind, "score", ev.Score, "elapsed", ev.Elapsed)
		return
	}
	a.logger.Debug(text, "game", ev.Game, "kind", ev.Kind, "score", ev.Score)
}
