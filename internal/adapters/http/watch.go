package httpadapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// watchReq is the single client frame: the board to solve.
type watchReq struct {
	Board [9][9]uint8 `json:"board"`
}

// watchFrame is one server frame. Kind is "step" while solving, then a
// final "done" or "failed".
type watchFrame struct {
	Kind      string       `json:"kind"`
	Step      *solver.Step `json:"step,omitempty"`
	Remaining int          `json:"remaining"`
	Board     *[9][9]uint8 `json:"board,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// watch streams one frame per assignment over a websocket.
func (h *Handler) watch(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	var req watchReq
	if err := ws.ReadJSON(&req); err != nil {
		h.log.Info("websocket client left before sending a board", "err", err)
		return
	}
	b := &domain.Board{Values: req.Board}
	run, err := h.engine.Run(b)
	if err != nil {
		_ = ws.WriteJSON(watchFrame{Kind: "failed", Error: err.Error()})
		return
	}
	for run.Next() {
		step := run.Step()
		frame := watchFrame{Kind: "step", Step: &step, Remaining: run.Remaining()}
		if err := ws.WriteJSON(frame); err != nil {
			h.log.Info("websocket client left mid-solve", "err", err)
			return
		}
	}
	RecordEliminations(run.Stats().Eliminations)
	if err := run.Err(); err != nil {
		_ = ws.WriteJSON(watchFrame{Kind: "failed", Remaining: run.Remaining(), Error: err.Error()})
		return
	}
	_ = ws.WriteJSON(watchFrame{Kind: "done", Board: &b.Values})
}
