package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sais189/travelex/internal/search"
)

const writeWait = 10 * time.Second

// SearchEvent is one frame sent by the browser. Anchor and Viewport may be
// attached to any event to refresh the layout used for overlay placement.
type SearchEvent struct {
	Type     string       `json:"type"`
	Value    string       `json:"value,omitempty"`
	ID       int          `json:"id,omitempty"`
	Anchor   *search.Rect `json:"anchor,omitempty"`
	Viewport *search.Size `json:"viewport,omitempty"`
}

// SearchMessage is one frame sent to the browser.
type SearchMessage struct {
	Type  string       `json:"type"` // "render", "navigate" or "error"
	View  *search.View `json:"view,omitempty"`
	Path  string       `json:"path,omitempty"`
	Error string       `json:"error,omitempty"`
}

// SearchController mounts one search widget per WebSocket connection.
type SearchController struct {
	source    search.Source
	blurDelay time.Duration
	upgrader  websocket.Upgrader
}

// NewSearchController accepts upgrades from allowedOrigins only. With none
// configured any origin is accepted, matching the CORS setup.
func NewSearchController(source search.Source, blurDelay time.Duration, allowedOrigins []string) *SearchController {
	return &SearchController{
		source:    source,
		blurDelay: blurDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker rejects browser upgrades whose Origin is not listed.
// Requests without an Origin header come from non-browser clients.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		logrus.WithField("origin", origin).Warn("Rejected search session from unlisted origin")
		return false
	}
}

// searchSession is the browser side of one mounted widget: it reports the
// last known layout and writes renders and navigation requests back.
type searchSession struct {
	id   string
	conn *websocket.Conn
	log  *logrus.Entry

	writeMu sync.Mutex

	layoutMu sync.Mutex
	anchor   *search.Rect
	viewport *search.Size
}

func (s *searchSession) send(msg SearchMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.WithError(err).Debug("Failed to write search message")
	}
}

func (s *searchSession) render(view search.View) {
	s.send(SearchMessage{Type: "render", View: &view})
}

// Navigate implements search.Navigator.
func (s *searchSession) Navigate(path string) {
	s.send(SearchMessage{Type: "navigate", Path: path})
}

func (s *searchSession) setLayout(anchor *search.Rect, viewport *search.Size) {
	s.layoutMu.Lock()
	defer s.layoutMu.Unlock()
	if anchor != nil {
		s.anchor = anchor
	}
	if viewport != nil {
		s.viewport = viewport
	}
}

func (s *searchSession) measure() (search.Rect, search.Size, bool) {
	s.layoutMu.Lock()
	defer s.layoutMu.Unlock()
	if s.anchor == nil || s.viewport == nil {
		return search.Rect{}, search.Size{}, false
	}
	return *s.anchor, *s.viewport, true
}

func (s *searchSession) dispatch(widget *search.Widget, ev SearchEvent) {
	if ev.Anchor != nil || ev.Viewport != nil {
		s.setLayout(ev.Anchor, ev.Viewport)
	}

	switch ev.Type {
	case "focus":
		widget.Focus()
	case "blur":
		widget.Blur()
	case "input":
		widget.Input(ev.Value)
	case "country":
		widget.SelectCountry(ev.Value)
	case "select":
		widget.Select(ev.ID)
	case "view_all":
		widget.ViewAll()
	case "layout":
		// geometry already stored above
	default:
		s.log.WithField("type", ev.Type).Warn("Unknown search event type")
		s.send(SearchMessage{Type: "error", Error: "unknown event type: " + ev.Type})
	}
}

// HandleSearchWebSocket handles GET /ws/search. The widget is mounted when
// the connection opens and unmounted when it closes.
func (sc *SearchController) HandleSearchWebSocket(c *gin.Context) {
	conn, err := sc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	session := &searchSession{id: uuid.NewString(), conn: conn}
	session.log = logrus.WithField("session_id", session.id)
	session.log.Info("Search session established.")

	widget := search.New(sc.source, session,
		search.WithBlurDelay(sc.blurDelay),
		search.WithMeasure(session.measure),
		search.WithOnChange(session.render),
		search.WithLogger(session.log),
	)
	defer widget.Unmount()

	session.render(widget.View())
	widget.Mount(c.Request.Context())

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				session.log.Info("Search session closed by client.")
			} else {
				session.log.WithError(err).Debug("Search session read ended.")
			}
			break
		}

		var ev SearchEvent
		if err := json.Unmarshal(p, &ev); err != nil {
			session.log.WithError(err).WithField("payload", string(p)).Warn("Malformed search event")
			session.send(SearchMessage{Type: "error", Error: "invalid event payload"})
			continue
		}
		session.dispatch(widget, ev)
	}
}
