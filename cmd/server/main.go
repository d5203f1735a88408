package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/homemade"
	"github.com/eloworld/strategies/internal/strategy"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Over          bool     `json:"over"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.PossibleMoves)
}

type MessageFromWeb struct {
	NewFen   *string `json:"newFen"`
	Strategy *string `json:"strategy"`
	Move     *string `json:"move"`
	Respond  *bool   `json:"respond"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Strategy != nil {
		return fmt.Sprint("MessageFromWeb Strategy: ", *u.Strategy)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Respond != nil {
		return fmt.Sprint("MessageFromWeb Respond: ", *u.Respond)
	}
	return "MessageFromWeb unknown"
}

// session is one websocket's game: the human sends moves, the chosen
// strategy answers them.
type session struct {
	logger Logger

	board    *board.ChessBoard
	strategy strategy.Strategy
	lastMove string
}

func newSession(logger Logger) *session {
	return &session{
		logger: logger,
		board:  board.NewChessBoard(),
	}
}

func (s *session) shutdown() {
	if s.strategy != nil {
		_ = s.strategy.Shutdown()
	}
}

func (s *session) update() UpdateToWeb {
	return UpdateToWeb{
		FenString: s.board.FenString(),
		LastMove:  s.lastMove,
		PossibleMoves: MapSlice(s.board.LegalMoves(), func(m board.Move) string {
			return m.Uci
		}),
		Player: s.board.Turn().String(),
		Over:   s.board.Status() != board.Ongoing,
	}
}

func (s *session) handle(message MessageFromWeb) (UpdateToWeb, Error) {
	if message.NewFen != nil {
		b, err := board.ChessBoardFromFen(*message.NewFen)
		if !IsNil(err) {
			return UpdateToWeb{}, err
		}
		s.board = b
		s.lastMove = ""
	}

	if message.Strategy != nil {
		if s.strategy != nil {
			_ = s.strategy.Shutdown()
		}
		options := []homemade.Option{homemade.WithLogger(s.logger)}
		if path := os.Getenv("STOCKFISH_PATH"); path != "" {
			options = append(options, homemade.WithOraclePath(path))
		}
		built, err := homemade.New(*message.Strategy, options...)
		if !IsNil(err) {
			return UpdateToWeb{}, err
		}
		s.strategy = built
	}

	if message.Move != nil {
		err := s.board.Push(board.Move{Uci: *message.Move})
		if !IsNil(err) {
			return UpdateToWeb{}, err
		}
		s.lastMove = *message.Move
	}

	if message.Respond != nil && *message.Respond {
		if s.strategy == nil {
			return UpdateToWeb{}, Errorf("no strategy selected")
		}
		if s.board.Status() != board.Ongoing {
			return s.update(), NilError
		}
		move, err := s.strategy.ChooseMove(s.board, strategy.FixedTimeControl(strategy.DefaultSearchTime), false)
		if !IsNil(err) {
			return UpdateToWeb{}, err
		}
		err = s.board.Push(move)
		if !IsNil(err) {
			return UpdateToWeb{}, err
		}
		s.lastMove = move.Uci
	}

	return s.update(), NilError
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func serveWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "upgrade:", err)
		return
	}
	defer func() { _ = c.Close() }()

	logger := FuncLogger(func(line string) {
		fmt.Fprint(os.Stderr, line)
	})

	s := newSession(logger)
	defer s.shutdown()

	for {
		var message MessageFromWeb
		if err := c.ReadJSON(&message); err != nil {
			break
		}
		logger.Println("received:", message.String())

		update, handleErr := s.handle(message)
		if !IsNil(handleErr) {
			logger.Println("error:", handleErr)
			continue
		}

		if err := c.WriteJSON(update); err != nil {
			break
		}
	}
}

func main() {
	port := "8002"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", serveWebsocket)

	fmt.Println("serving at :" + port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
