package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/hint"
	"github.com/CoolCat467/Sudoku-Solver/internal/infrastructure/storage"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
	"github.com/CoolCat467/Sudoku-Solver/internal/usecase"
	"github.com/CoolCat467/Sudoku-Solver/internal/validator"
)

const (
	easyBoard    = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	easySolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	// easySolution with five cells blanked again; solvable in five steps.
	almostSolved = "004678912672195348198042567859761423426803791713924856961537284287419635045286179"
)

func gridOf(t *testing.T, s string) [9][9]uint8 {
	t.Helper()
	require.Len(t, s, 81)
	var g [9][9]uint8
	for i, ch := range s {
		g[i/9][i%9] = uint8(ch - '0')
	}
	return g
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := usecase.NewService(
		solver.NewDeductive(),
		validator.New(),
		hint.NewDeduction(),
		storage.NewFS(t.TempDir()),
	)
	h := New(svc, solver.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := gin.New()
	h.Register(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSolveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(t, r, "/api/solve", gin.H{"board": gridOf(t, easyBoard)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gridOf(t, easySolution), resp.Board)
	assert.Len(t, resp.Steps, 51)
	assert.Equal(t, 51, resp.Assignments)
	assert.NotZero(t, resp.Eliminations[domain.StrategyHiddenSingle])
	for _, step := range resp.Steps {
		assert.NotZero(t, step.Value)
	}
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(t, r, "/api/solve", gin.H{"board": [9][9]uint8{}})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp unsolvableResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Contradiction)
	assert.Contains(t, resp.Error, "no strategy makes progress")
	require.Len(t, resp.Remaining, 81)
	assert.Len(t, resp.Remaining[0].Candidates, 9)
}

func TestSolveEndpointContradiction(t *testing.T) {
	// Row 0 forces 9 into (0,8), but column 8 already holds a 9.
	var g [9][9]uint8
	copy(g[0][:], []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0})
	g[1][8] = 9

	r := newTestRouter(t)
	w := postJSON(t, r, "/api/solve", gin.H{"board": g})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp unsolvableResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Contradiction)
	assert.Contains(t, resp.Error, "no remaining candidates")
}

func TestSolveEndpointRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	g := gridOf(t, easyBoard)
	g[0][0] = 12
	w := postJSON(t, r, "/api/solve", gin.H{"board": g})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/validate", gin.H{"board": gridOf(t, easyBoard)})
	require.Equal(t, http.StatusOK, w.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Conflicts)

	var g [9][9]uint8
	g[0][0], g[0][1] = 5, 5
	w = postJSON(t, r, "/api/validate", gin.H{"board": g})
	require.Equal(t, http.StatusOK, w.Code)
	resp = validateResp{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 1}}, resp.Conflicts)
}

func TestHintEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/hint", gin.H{"board": gridOf(t, easyBoard)})
	require.Equal(t, http.StatusOK, w.Code)
	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, domain.StrategyNakedSingle, resp.Hint.Strategy)
	assert.Equal(t, uint8(5), resp.Hint.Value)
	require.Len(t, resp.Hint.Cells, 1)
	assert.Equal(t, domain.CellCoord{Row: 4, Col: 4}, resp.Hint.Cells[0])

	w = postJSON(t, r, "/api/hint", gin.H{"board": [9][9]uint8{}})
	require.Equal(t, http.StatusOK, w.Code)
	resp = hintResp{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
}

func TestPuzzleEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/puzzles", gin.H{"board": gridOf(t, easyBoard), "name": "classic"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created domain.Puzzle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err, "assigned ID %q should be a uuid", created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.True(t, created.Board.Fixed[0][0], "givens should be marked fixed")

	w = getPath(t, r, "/api/puzzles/"+created.ID)
	require.Equal(t, http.StatusOK, w.Code)
	var loaded domain.Puzzle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, "classic", loaded.Name)
	assert.Equal(t, gridOf(t, easyBoard), loaded.Board.Values)

	w = getPath(t, r, "/api/puzzles")
	require.Equal(t, http.StatusOK, w.Code)
	var metas []domain.PuzzleMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	require.Len(t, metas, 1)
	assert.Equal(t, created.ID, metas[0].ID)

	w = getPath(t, r, "/api/puzzles/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPuzzlesEmptyIsArray(t *testing.T) {
	r := newTestRouter(t)
	w := getPath(t, r, "/api/puzzles")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := getPath(t, r, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := getPath(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sudoku_solve_duration_seconds")
}
