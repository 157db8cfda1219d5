package server

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/wbrown/namedcolor"
)

// Helper to make Gorilla Websockets threadsafe
type wsConn struct {
	sync.Mutex
	*websocket.Conn
	id  string
	log zerolog.Logger
}

type messageIn struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

type messageOut struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

func newWsConn(unsafeConn *websocket.Conn, l zerolog.Logger) *wsConn {
	id := uuid.New().String()
	return &wsConn{Conn: unsafeConn, id: id, log: l.With().Str("conn", id).Logger()}
}

func (ws *wsConn) read() (m messageIn, err error) {
	err = ws.ReadJSON(&m)
	if err != nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		ws.log.Error().Err(err).Msg("read_json_failed")
	}
	return
}

func (ws *wsConn) sendWithPayload(kind string, payload interface{}) error {
	ws.Lock()
	defer ws.Unlock()

	err := ws.WriteJSON(&messageOut{Kind: kind, Payload: payload})
	if err != nil {
		ws.log.Error().Err(err).Str("kind", kind).Msg("json_write_failed")
	}
	return err
}

// websocketHandler answers a stream of lookups on one connection. Each
// incoming message is {"kind": "hex"|"rgb", "payload": "ff0000"|"255,0,0"}
// and is answered by a "match" or an "error" message.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	unsafeConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("ws_upgrade_failed")
		return
	}
	ws := newWsConn(unsafeConn, s.log)
	defer ws.Close()
	ws.log.Debug().Str("origin", r.Header.Get("Origin")).Msg("ws_connected")

	for {
		m, err := ws.read()
		if err != nil {
			return
		}
		id := uuid.New().String()
		var match namedcolor.Match
		var lookupErr error
		switch m.Kind {
		case "hex":
			match, lookupErr = s.table.LookupHex(m.Payload)
		case "rgb":
			parts := strings.Split(m.Payload, ",")
			if len(parts) != 3 {
				lookupErr = fmt.Errorf("%w: rgb payload must be r,g,b", namedcolor.ErrMalformedChannel)
				break
			}
			match, lookupErr = lookupChannels(s.table,
				strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]))
		default:
			lookupErr = fmt.Errorf("unknown kind %q", m.Kind)
		}

		if lookupErr != nil {
			err = ws.sendWithPayload("error", errorResponse{ID: id, Error: lookupErr.Error()})
		} else {
			err = ws.sendWithPayload("match", newMatchResponse(id, m.Payload, match))
		}
		if err != nil {
			return
		}
	}
}
