package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/moneylane/moneylane/internal/config"
	"github.com/moneylane/moneylane/internal/services/game"
	"github.com/rs/cors"
)

type API struct {
	router      *mux.Router
	gameService game.Service
	config      *config.Config
}

func New(cfg *config.Config, gameService game.Service) *API {
	api := &API{
		router:      mux.NewRouter(),
		gameService: gameService,
		config:      cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/health", a.handleHealth).Methods("GET")

	// Session lifecycle
	a.router.HandleFunc("/api/sessions", a.handleCreateSession).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}", a.handleEndSession).Methods("DELETE")

	// Players
	a.router.HandleFunc("/api/sessions/{session_id}/players", a.handleAddPlayer).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players", a.handleFindPlayerByName).Methods("GET").Queries("name", "{name}")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}", a.handleGetPlayer).Methods("GET")

	// Board
	a.router.HandleFunc("/api/sessions/{session_id}/locations/{location_idx}", a.handleGetLocation).Methods("GET")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/move-relative", a.handleMoveRelative).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/move-absolute", a.handleMoveAbsolute).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/roll", a.handleRollAndMove).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/actions/{action_id}", a.handleDispatchAction).Methods("POST")

	// Banking
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/borrow", a.handleBorrow).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/repay", a.handleRepayDebt).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/debts", a.handleGetPlayerDebts).Methods("GET")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/balance", a.handlePlayerBalance).Methods("GET")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/credit-score", a.handlePlayerCreditScore).Methods("GET")
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/statement", a.handlePlayerStatement).Methods("GET")

	// Ledger
	a.router.HandleFunc("/api/sessions/{session_id}/transactions", a.handlePostTransaction).Methods("POST")
	a.router.HandleFunc("/api/sessions/{session_id}/transactions", a.handleListTransactions).Methods("GET")

	// Turn clock
	a.router.HandleFunc("/api/sessions/{session_id}/players/{player_id}/advance-turn", a.handleAdvanceTurn).Methods("POST")

	// Archived results
	a.router.HandleFunc("/api/results", a.handleListGameResults).Methods("GET")
	a.router.HandleFunc("/api/results/{session_id}", a.handleGetGameResult).Methods("GET")
}

// Handler returns the router wrapped with CORS, for serving and for tests.
func (a *API) Handler() http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	return cors.New(corsOptions).Handler(a.router)
}

func (a *API) Start() error {
	log.Printf("API server listening on http://%s", a.config.Bind)
	return http.ListenAndServe(a.config.Bind, a.Handler())
}
