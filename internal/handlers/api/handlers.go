package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/moneylane/moneylane/internal/services/game"
)

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BoardSize int `json:"board_size"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	output, err := a.gameService.CreateSession(r.Context(), &game.CreateSessionInput{
		BoardSize: req.BoardSize,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"session_id": output.SessionID,
	})
}

func (a *API) handleEndSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := a.gameService.EndSession(r.Context(), &game.EndSessionInput{
		SessionID: vars["session_id"],
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Result)
}

func (a *API) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.AddPlayer(r.Context(), &game.AddPlayerInput{
		SessionID: vars["session_id"],
		Name:      req.Name,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Player)
}

func (a *API) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.GetPlayer(r.Context(), &game.GetPlayerInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Player)
}

func (a *API) handleFindPlayerByName(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := a.gameService.FindPlayerByName(r.Context(), &game.FindPlayerByNameInput{
		SessionID: vars["session_id"],
		Name:      r.URL.Query().Get("name"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Player)
}

func (a *API) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationIdx, err := strconv.Atoi(vars["location_idx"])
	if err != nil {
		http.Error(w, "invalid location_idx", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.GetLocation(r.Context(), &game.GetLocationInput{
		SessionID:   vars["session_id"],
		LocationIdx: locationIdx,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Location)
}

func (a *API) handleMoveRelative(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.MoveRelative(r.Context(), &game.MoveRelativeInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
		Delta:     req.Delta,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Location)
}

func (a *API) handleMoveAbsolute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	var req struct {
		LocationIdx int `json:"location_idx"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.MoveAbsolute(r.Context(), &game.MoveAbsoluteInput{
		SessionID:   vars["session_id"],
		PlayerID:    playerID,
		LocationIdx: req.LocationIdx,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Location)
}

func (a *API) handleRollAndMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.RollAndMove(r.Context(), &game.RollAndMoveInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dice":     output.Dice,
		"total":    output.Total,
		"location": output.Location,
	})
}

func (a *API) handleDispatchAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.DispatchAction(r.Context(), &game.DispatchActionInput{
		SessionID: vars["session_id"],
		ActionID:  vars["action_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"success": output.Success,
	})
}

func (a *API) handleBorrow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.Borrow(r.Context(), &game.BorrowInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Debt)
}

func (a *API) handleRepayDebt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	var req struct {
		DebtID int64 `json:"debt_id"`
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.RepayDebt(r.Context(), &game.RepayDebtInput{
		SessionID: vars["session_id"],
		DebtID:    req.DebtID,
		DebteeID:  playerID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Debt)
}

func (a *API) handleGetPlayerDebts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.GetPlayerDebts(r.Context(), &game.GetPlayerDebtsInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Debts)
}

func (a *API) handlePlayerBalance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.PlayerBalance(r.Context(), &game.PlayerBalanceInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"money": output.Balance,
	})
}

func (a *API) handlePlayerCreditScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.PlayerCreditScore(r.Context(), &game.PlayerCreditScoreInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{
		"credit_score": output.Score,
	})
}

func (a *API) handlePlayerStatement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.PlayerStatement(r.Context(), &game.PlayerStatementInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Statement)
}

func (a *API) handlePostTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Payment       int64   `json:"payment"`
		SenderID      int64   `json:"sender_id"`
		ReceiverID    int64   `json:"receiver_id"`
		Desc          string  `json:"desc"`
		Turn          int     `json:"turn"`
		BaseFromScore float64 `json:"base_from_score"`
		BaseToScore   float64 `json:"base_to_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.PostTransaction(r.Context(), &game.PostTransactionInput{
		SessionID:     vars["session_id"],
		Payment:       req.Payment,
		SenderID:      req.SenderID,
		ReceiverID:    req.ReceiverID,
		Desc:          req.Desc,
		Turn:          req.Turn,
		BaseFromScore: req.BaseFromScore,
		BaseToScore:   req.BaseToScore,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Transaction)
}

func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := a.gameService.ListTransactions(r.Context(), &game.ListTransactionsInput{
		SessionID: vars["session_id"],
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Transactions)
}

func (a *API) handleAdvanceTurn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, err := strconv.ParseInt(vars["player_id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid player_id", http.StatusBadRequest)
		return
	}

	output, err := a.gameService.AdvanceTurn(r.Context(), &game.AdvanceTurnInput{
		SessionID: vars["session_id"],
		PlayerID:  playerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"turns":   output.Turns,
		"settled": output.Settled,
	})
}

func (a *API) handleGetGameResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := a.gameService.GetGameResult(r.Context(), &game.GetGameResultInput{
		SessionID: vars["session_id"],
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Result)
}

func (a *API) handleListGameResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	output, err := a.gameService.ListGameResults(r.Context(), &game.ListGameResultsInput{
		Limit: limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Results)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps game service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch err {
	case game.ErrSessionNotFound, game.ErrPlayerNotFound, game.ErrDebtNotFound, game.ErrLocationNotFound:
		status = http.StatusNotFound
	case game.ErrUnknownAction, game.ErrInvalidAmount, game.ErrNegativeAmount, game.ErrInvalidBoardSize:
		status = http.StatusBadRequest
	}

	http.Error(w, err.Error(), status)
}
