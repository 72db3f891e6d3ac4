// Package httpadapter exposes the solving service as a JSON API. Solve
// and watch run the deduction engine directly because they report
// per-step detail; validate, hint, and the puzzle store go through the
// use case service.
package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
	"github.com/CoolCat467/Sudoku-Solver/internal/usecase"
)

func init() {
	// cellvalue bounds a grid cell: 0 is empty, 1..9 are placed.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cellvalue", func(fl validator.FieldLevel) bool {
			return fl.Field().Uint() <= 9
		})
	}
}

type Handler struct {
	uc     *usecase.Service
	engine *solver.Engine
	log    *slog.Logger
}

func New(uc *usecase.Service, engine *solver.Engine, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{uc: uc, engine: engine, log: log}
}

// Register wires middleware and routes onto r.
func (h *Handler) Register(r *gin.Engine) {
	r.Use(requestLogger(h.log), metricsMiddleware())
	api := r.Group("/api")
	api.POST("/solve", h.solve)
	api.POST("/validate", h.validate)
	api.POST("/hint", h.hint)
	api.GET("/watch", h.watch)
	api.POST("/puzzles", h.savePuzzle)
	api.GET("/puzzles", h.listPuzzles)
	api.GET("/puzzles/:id", h.loadPuzzle)
	r.GET("/healthz", h.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// boardReq carries a raw grid. Zero means empty.
type boardReq struct {
	Board [9][9]uint8 `json:"board" binding:"dive,dive,cellvalue"`
}

// ---- Solve ----

type solveResp struct {
	Board        [9][9]uint8             `json:"board"`
	Steps        []solver.Step           `json:"steps"`
	Assignments  int                     `json:"assignments"`
	Cycles       int                     `json:"cycles"`
	Eliminations map[domain.Strategy]int `json:"eliminations,omitempty"`
	DurationMs   int64                   `json:"durationMs"`
}

type unsolvableResp struct {
	Error         string                  `json:"error"`
	Contradiction bool                    `json:"contradiction"`
	Remaining     []solver.CellCandidates `json:"remaining"`
}

func (h *Handler) solve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		RecordSolve("invalid", 0)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	run, err := h.engine.Run(b)
	if err != nil {
		RecordSolve("invalid", 0)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	steps := make([]solver.Step, 0, 81)
	for run.Next() {
		steps = append(steps, run.Step())
	}
	stats := run.Stats()
	RecordEliminations(stats.Eliminations)
	if err := run.Err(); err != nil {
		RecordSolve("unsolvable", stats.Duration)
		var ue *solver.UnsolvableError
		if errors.As(err, &ue) {
			c.JSON(http.StatusUnprocessableEntity, unsolvableResp{
				Error:         err.Error(),
				Contradiction: ue.Contradiction,
				Remaining:     ue.Remaining,
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	RecordSolve("solved", stats.Duration)
	c.JSON(http.StatusOK, solveResp{
		Board:        b.Values,
		Steps:        steps,
		Assignments:  stats.Assignments,
		Cycles:       stats.Cycles,
		Eliminations: stats.Eliminations,
		DurationMs:   stats.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	ok, conflicts, err := h.uc.Validate(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, ok, err := h.uc.Hint(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Puzzles ----

type savePuzzleReq struct {
	Board [9][9]uint8 `json:"board" binding:"dive,dive,cellvalue"`
	Name  string      `json:"name,omitempty"`
	Notes string      `json:"notes,omitempty"`
}

func (h *Handler) savePuzzle(c *gin.Context) {
	var req savePuzzleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puzzle: " + err.Error()})
		return
	}
	p := &domain.Puzzle{
		Board: domain.Board{Values: req.Board},
		Name:  req.Name,
		Notes: req.Notes,
	}
	p.Board.MarkGivens()
	if err := h.uc.Save(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) loadPuzzle(c *gin.Context) {
	p, err := h.uc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listPuzzles(c *gin.Context) {
	metas, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, metas)
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
