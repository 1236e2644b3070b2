package net

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"LocalPaint/internal/input"
)

// InputPath is where remote devices connect.
const InputPath = "/input"

// InputMessage is one pointer or touch event from a remote device.
// Coordinates are already surface-local. A message carrying a touch contact
// id is a touch event, anything else is a mouse event.
type InputMessage struct {
	Type  string  `json:"type"` // begin, move, end, cancel
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Touch *int    `json:"touch,omitempty"`
}

// Peer is a connected remote input device.
type Peer struct {
	ID     string
	Conn   *websocket.Conn
	router *input.Router
}

// PeerManager keeps track of connected input devices.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
}

// NewPeerManager creates a new manager.
func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
	}
}

// Add registers a freshly connected peer.
func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[peer.ID] = peer
	log.Printf("[REMOTE] Input device %s connected from %s", peer.ID, peer.Conn.RemoteAddr())
}

// Remove forgets a peer.
func (pm *PeerManager) Remove(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.peers, peer.ID)
	log.Printf("[REMOTE] Input device %s disconnected", peer.ID)
}

// Count returns the number of connected peers.
func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// InputServer accepts websocket connections and feeds their events into an
// arbiter. Every peer competes for the stroke as its own source, so a device
// cannot take over or end a stroke another source is drawing.
type InputServer struct {
	Peers *PeerManager

	arbiter  *input.Arbiter
	post     func(func())
	upgrader websocket.Upgrader
}

// NewInputServer returns a server driving arbiter. post runs a function on the
// host's event goroutine; a nil post calls it directly.
func NewInputServer(arbiter *input.Arbiter, post func(func())) *InputServer {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &InputServer{
		Peers:   NewPeerManager(),
		arbiter: arbiter,
		post:    post,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *InputServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[REMOTE] Upgrade failed: %v", err)
		return
	}
	peer := &Peer{ID: uuid.NewString(), Conn: conn, router: input.NewRouter(s.arbiter.Source())}
	s.Peers.Add(peer)
	s.handle(peer)
}

func (s *InputServer) handle(peer *Peer) {
	defer peer.Conn.Close()
	defer s.Peers.Remove(peer)
	defer s.post(peer.router.Reset)

	for {
		_, data, err := peer.Conn.ReadMessage()
		if err != nil {
			return
		}
		var msg InputMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[REMOTE] Ignoring malformed message from %s: %v", peer.ID, err)
			continue
		}
		s.post(func() { dispatch(peer.router, msg) })
	}
}

func dispatch(r *input.Router, msg InputMessage) {
	pos := input.Pos{X: msg.X, Y: msg.Y}
	origin := input.Pos{}
	if msg.Touch != nil {
		id := *msg.Touch
		switch msg.Type {
		case "begin":
			r.TouchStart(id, pos, origin)
		case "move":
			r.TouchMove(id, pos, origin)
		case "end":
			r.TouchEnd(id)
		case "cancel":
			r.TouchCancel(id)
		}
		return
	}
	switch msg.Type {
	case "begin":
		r.PointerDown(pos, origin)
	case "move":
		r.PointerMove(pos, origin)
	case "end":
		r.PointerUp()
	case "cancel":
		r.PointerLeave()
	}
}

// ListenAndServe serves the input endpoint on port until the server fails.
func (s *InputServer) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.Handle(InputPath, s)
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[REMOTE] Input server listening on port %d", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("input server on %s: %w", addr, err)
	}
	return nil
}
