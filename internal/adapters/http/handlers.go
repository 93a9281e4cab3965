package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/usecase"
)

// Handler exposes the engine over JSON. SolveTimeout, when non-zero,
// caps each solve request; the engine checks the context between
// candidate trials.
type Handler struct {
	UC           *usecase.Service
	SolveTimeout time.Duration
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/propagate", h.handlePropagate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/candidates", h.handleCandidates)
	mux.HandleFunc("/api/hint", h.handleHint)
}

// checkBoard rejects out-of-alphabet values before they reach the
// engine; past this point the engine assumes well-formed cells.
func checkBoard(vals [9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !domain.ValidValue(vals[r][c]) {
				return errors.New("cell value out of range 0..9")
			}
		}
	}
	return nil
}

type boardReq struct {
	Board  [9][9]uint8          `json:"board"`
	Origin *[9][9]domain.Origin `json:"origin,omitempty"`
}

func (q *boardReq) toBoard() *domain.Board {
	b := &domain.Board{Values: q.Board}
	if q.Origin != nil {
		b.Origin = *q.Origin
		// values outside the Origin enum fall back to user-supplied
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				switch b.Origin[r][c] {
				case domain.OriginNone, domain.OriginUser, domain.OriginSolver:
				default:
					b.Origin[r][c] = domain.OriginUser
				}
			}
		}
	}
	b.NormalizeOrigins()
	return b
}

func decodeBoard(w http.ResponseWriter, r *http.Request, q *boardReq) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(q); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	if err := checkBoard(q.Board); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return false
	}
	return true
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodeBoard(w, r, &req) {
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.toBoard())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Propagate ----

type propagateResp struct {
	Board      [9][9]uint8         `json:"board"`
	Origin     [9][9]domain.Origin `json:"origin"`
	DurationMs int64               `json:"durationMs"`
	Steps      int                 `json:"steps"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handlePropagate(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodeBoard(w, r, &req) {
		return
	}
	out, st, err := h.UC.Propagate(r.Context(), req.toBoard())
	resp := propagateResp{DurationMs: st.Duration.Milliseconds(), Steps: st.Nodes}
	if out != nil {
		resp.Board = out.Values
		resp.Origin = out.Origin
	}
	if err != nil {
		// an invalid board comes back unchanged
		resp.Error = err.Error()
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8         `json:"board,omitempty"`
	Origin     [9][9]domain.Origin `json:"origin,omitempty"`
	DurationMs int64               `json:"durationMs"`
	Nodes      int                 `json:"nodes"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodeBoard(w, r, &req) {
		return
	}
	ctx := r.Context()
	if h.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.SolveTimeout)
		defer cancel()
	}
	out, st, err := h.UC.Solve(ctx, req.toBoard())
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidBoard), errors.Is(err, domain.ErrNoSolution):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			status = http.StatusRequestTimeout
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Board:      out.Values,
		Origin:     out.Origin,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Candidates ----

type candidatesReq struct {
	boardReq
	Row int `json:"row"`
	Col int `json:"col"`
}

// []uint8 would marshal as base64, so candidates go out as ints
type candidatesResp struct {
	Candidates []int  `json:"candidates"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req candidatesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(candidatesResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := checkBoard(req.Board); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(candidatesResp{Error: err.Error()})
		return
	}
	if !domain.InBounds(req.Row, req.Col) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(candidatesResp{Error: "row/col out of range 0..8"})
		return
	}
	cands, err := h.UC.Candidates(r.Context(), req.toBoard(), req.Row, req.Col)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidBoard) {
			status = http.StatusUnprocessableEntity
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(candidatesResp{Error: err.Error()})
		return
	}
	out := make([]int, 0, len(cands))
	for _, v := range cands {
		out = append(out, int(v))
	}
	_ = json.NewEncoder(w).Encode(candidatesResp{Candidates: out})
}

// ---- Hint ----

type hintReq struct {
	boardReq
	MaxTier string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	if s == "advanced" {
		return domain.StrategyAdvanced
	}
	return domain.StrategySingles
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := checkBoard(req.Board); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.toBoard(), parseTier(req.MaxTier))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidBoard) {
			status = http.StatusUnprocessableEntity
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}
