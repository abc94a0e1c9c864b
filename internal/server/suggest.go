package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// suggestRequest is the incoming WebSocket message format: one message
// per keystroke batch from the search box.
type suggestRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// suggestResponse is the outgoing WebSocket message format.
type suggestResponse struct {
	Query       string          `json:"query"`
	Suggestions []candidateJSON `json:"suggestions"`
	Error       string          `json:"error,omitempty"`
}

// handleSuggest streams live title suggestions while the client types.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req suggestRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendSuggestError(conn, "", "invalid message format")
			continue
		}
		if req.Query == "" {
			s.sendSuggestError(conn, "", "query is required")
			continue
		}
		if req.Limit <= 0 || req.Limit > 20 {
			req.Limit = 5
		}

		cands := s.engine.Suggest(req.Query, req.Limit)
		resp := suggestResponse{Query: req.Query, Suggestions: toCandidateJSON(cands)}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("server: websocket write: %v", err)
			return
		}
	}
}

func (s *Server) sendSuggestError(conn *websocket.Conn, query, msg string) {
	if err := conn.WriteJSON(suggestResponse{Query: query, Error: msg}); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}
