package rest

import (
	"net/http"

	"leagueops/internal/service"
	"leagueops/internal/transport/rest/handler"
	"leagueops/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// AssignmentContainer holds the assignment-service dependencies.
type AssignmentContainer struct {
	Assignments *service.AssignmentService
	Aggregator  *service.Aggregator
	Health      *service.HealthService
	Log         *zap.Logger
}

// NewAssignmentRouter builds the assignment-service HTTP surface.
func NewAssignmentRouter(c *AssignmentContainer) http.Handler {
	r := newRouter(c.Log, c.Health)

	h := handler.NewAssignmentHandler(c.Assignments, c.Aggregator)
	r.HandleFunc("/assignments", h.Create).Methods("POST")
	r.HandleFunc("/assignments", h.List).Methods("GET")
	r.HandleFunc("/assignments/full-details/{assignment_id}", h.FullDetails).Methods("GET")
	r.HandleFunc("/assignments/{assignment_id}", h.Update).Methods("PUT")
	r.HandleFunc("/assignments/{assignment_id}", h.Delete).Methods("DELETE")

	return r
}

// UserContainer holds the user-service dependencies.
type UserContainer struct {
	Users  *service.UserService
	Health *service.HealthService
	Log    *zap.Logger
}

// NewUserRouter builds the user-service HTTP surface.
func NewUserRouter(c *UserContainer) http.Handler {
	r := newRouter(c.Log, c.Health)

	h := handler.NewUserHandler(c.Users)
	r.HandleFunc("/users", h.Create).Methods("POST")
	r.HandleFunc("/users", h.List).Methods("GET")
	r.HandleFunc("/users/{user_id}", h.Update).Methods("PUT")
	r.HandleFunc("/users/{user_id}", h.Delete).Methods("DELETE")

	return r
}

// GameContainer holds the game-service dependencies.
type GameContainer struct {
	Games  *service.GameService
	Health *service.HealthService
	Log    *zap.Logger
}

// NewGameRouter builds the game-service HTTP surface.
func NewGameRouter(c *GameContainer) http.Handler {
	r := newRouter(c.Log, c.Health)

	h := handler.NewGameHandler(c.Games)
	r.HandleFunc("/games", h.Create).Methods("POST")
	r.HandleFunc("/games", h.List).Methods("GET")
	r.HandleFunc("/games/{game_id}", h.Update).Methods("PUT")
	r.HandleFunc("/games/{game_id}", h.Delete).Methods("DELETE")

	return r
}

func newRouter(logger *zap.Logger, health *service.HealthService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.HandleFunc("/health", handler.NewHealthHandler(health).Serve).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
