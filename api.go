package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CodedInternet/gotarget/comms"
	"github.com/CodedInternet/gotarget/game"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// RangeAPI is what the HTTP surface needs from the game session.
type RangeAPI interface {
	comms.Controller
	State() game.Snapshot
}

//---
// Payloads
//---

type StartPayload struct {
	Limit int `json:"limit"`
}

func (p *StartPayload) Bind(r *http.Request) error {
	if p.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

type TargetPayload struct {
	State string `json:"state"`
	state game.State
}

func (p *TargetPayload) Bind(r *http.Request) (err error) {
	p.state, err = game.ParseState(p.State)
	return
}

type ErrPayload struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrPayload{Error: err.Error()})
}

func errorStatus(err error, status int) int {
	if errors.Is(err, game.ErrBusy) {
		return http.StatusServiceUnavailable
	}
	return status
}

//---
// Router
//---

func NewRouter(api RangeAPI, display http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer) // make sure this is last

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, api.State())
		})

		r.Post("/game/stop", func(w http.ResponseWriter, r *http.Request) {
			if err := api.Stop(); err != nil {
				renderError(w, r, errorStatus(err, http.StatusInternalServerError), err)
				return
			}
			render.Status(r, http.StatusAccepted)
			render.JSON(w, r, api.State())
		})

		r.Post("/game/{mode}", func(w http.ResponseWriter, r *http.Request) {
			var payload StartPayload
			if err := render.Bind(r, &payload); err != nil {
				renderError(w, r, http.StatusBadRequest, err)
				return
			}
			if err := api.Start(chi.URLParam(r, "mode"), payload.Limit); err != nil {
				renderError(w, r, errorStatus(err, http.StatusNotFound), err)
				return
			}
			render.Status(r, http.StatusAccepted)
			render.JSON(w, r, api.State())
		})

		r.Post("/targets/{index}", func(w http.ResponseWriter, r *http.Request) {
			index, err := strconv.Atoi(chi.URLParam(r, "index"))
			if err != nil {
				renderError(w, r, http.StatusBadRequest, err)
				return
			}
			var payload TargetPayload
			if err := render.Bind(r, &payload); err != nil {
				renderError(w, r, http.StatusBadRequest, err)
				return
			}
			if err := api.SetTarget(index, payload.state); err != nil {
				renderError(w, r, errorStatus(err, http.StatusNotFound), err)
				return
			}
			render.Status(r, http.StatusAccepted)
			render.JSON(w, r, api.State())
		})
	})

	r.Get("/ws/display", display.ServeHTTP)

	return r
}
