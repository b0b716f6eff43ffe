// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"parkbike/internal/app"
	"parkbike/internal/domain"
	"parkbike/internal/i18n"
	"parkbike/internal/mapstyle"
)

// MaxWait caps a state long-poll; it stays below RequestTimeout.
const MaxWait = 10 * time.Second

type Handlers struct{ C *app.Controller }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/state", h.getState)
		r.Get("/state/wait", h.waitState)
		r.Get("/spots", h.listSpots)
		r.Get("/markers", h.listMarkers)
		r.Post("/spots/{id}/select", h.selectSpot)
		r.Post("/favorites/{id}/toggle", h.toggleFavorite)
		r.Post("/flags/{name}/toggle", h.toggleFlag)
		r.Put("/language", h.setLanguage)
		r.Get("/languages", h.listLanguages)
		r.Put("/list-filter", h.setListFilter)
		r.Put("/region", h.setRegion)
		r.Post("/dark-mode/toggle", h.toggleDarkMode)
		r.Post("/refresh", h.refresh)
		r.Get("/i18n/{key}", h.translate)
		r.Get("/map-style", h.mapStyle)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeErr maps controller errors to problem responses.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSpotNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrUnknownFlag),
		errors.Is(err, domain.ErrUnknownFilter),
		errors.Is(err, domain.ErrUnsupportedLanguage):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return false
	}
	return true
}

func spotIDParam(w http.ResponseWriter, r *http.Request) (domain.SpotID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return domain.SpotID(id), true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) getState(w http.ResponseWriter, r *http.Request) {
	st := h.C.Snapshot()
	etag, body := calcETagAndBody(st)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(st.View.Language))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getState body")
	}
}

// waitState long-polls until the state version exceeds ?version=.
// It answers 204 when nothing changed within ?wait= (seconds, capped).
func (h *Handlers) waitState(w http.ResponseWriter, r *http.Request) {
	after, err := strconv.ParseUint(r.URL.Query().Get("version"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid version", "version must be a non-negative integer")
		return
	}
	wait := MaxWait
	if ws := r.URL.Query().Get("wait"); ws != "" {
		secs, err := strconv.Atoi(ws)
		if err != nil || secs <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid wait", "wait must be a positive number of seconds")
			return
		}
		if d := time.Duration(secs) * time.Second; d < wait {
			wait = d
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), wait)
	defer cancel()

	st, err := h.C.WaitForVersion(ctx, after)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type spotItem struct {
	domain.Spot
	Favorite bool   `json:"favorite"`
	Label    string `json:"label"`
}

func (h *Handlers) listSpots(w http.ResponseWriter, r *http.Request) {
	st := h.C.Snapshot()
	if f := r.URL.Query().Get("filter"); f != "" {
		mode, err := app.ParseListFilter(f)
		if err != nil {
			writeErr(w, err)
			return
		}
		st = app.WithListFilter(mode)(st)
	}
	lang := st.View.Language
	spots := st.ListSpots()
	out := make([]spotItem, 0, len(spots))
	for _, sp := range spots {
		out = append(out, spotItem{
			Spot:     sp,
			Favorite: st.Favorites.Contains(sp.ID),
			Label:    fmt.Sprintf("%s - %s: %d", sp.Name, i18n.T(lang, i18n.Capacity, "capacity"), sp.Capacity),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"filter": st.View.ListFilter, "items": out})
}

type markerView struct {
	Coordinate  domain.Coordinate `json:"coordinate"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	SpotID      *domain.SpotID    `json:"spotId,omitempty"`
	Favorite    bool              `json:"favorite"`
	Callout     string            `json:"callout,omitempty"`
}

// listMarkers is what the map draws: the user marker, which ignores the
// marker flags, plus every visible spot marker.
func (h *Handlers) listMarkers(w http.ResponseWriter, r *http.Request) {
	st := h.C.Snapshot()
	lang := st.View.Language

	var user *markerView
	if st.Location != nil {
		user = &markerView{
			Coordinate:  *st.Location,
			Title:       i18n.T(lang, i18n.YourLocation, "yourLocation"),
			Description: i18n.T(lang, i18n.YouAreHere, "youAreHere"),
		}
	}
	visible := st.VisibleMarkers()
	spots := make([]markerView, 0, len(visible))
	for _, m := range visible {
		id := m.Spot.ID
		callout := i18n.AddToFavorites
		if m.Favorite {
			callout = i18n.RemoveFromFavorites
		}
		spots = append(spots, markerView{
			Coordinate:  m.Spot.Coordinate(),
			Title:       m.Spot.Name,
			Description: fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Capacity, "capacity"), m.Spot.Capacity),
			SpotID:      &id,
			Favorite:    m.Favorite,
			Callout:     i18n.T(lang, callout, callout.String()),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"renderEpoch": st.RenderEpoch,
		"region":      st.View.Region,
		"user":        user,
		"spots":       spots,
	})
}

func (h *Handlers) selectSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := spotIDParam(w, r)
	if !ok {
		return
	}
	st, err := h.C.SelectSpot(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st.View)
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := spotIDParam(w, r)
	if !ok {
		return
	}
	st, err := h.C.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorite":    st.Favorites.Contains(id),
		"favorites":   st.Favorites,
		"renderEpoch": st.RenderEpoch,
		"version":     st.Version,
	})
}

func (h *Handlers) toggleFlag(w http.ResponseWriter, r *http.Request) {
	st, err := h.C.ToggleFlag(chi.URLParam(r, "name"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st.View)
}

func (h *Handlers) setLanguage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	st, err := h.C.SetLanguage(in.Language)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st.View)
}

func (h *Handlers) listLanguages(w http.ResponseWriter, r *http.Request) {
	cur := h.C.Snapshot().View.Language
	type lang struct {
		Code     i18n.Lang `json:"code"`
		Name     string    `json:"name"`
		Selected bool      `json:"selected"`
	}
	out := make([]lang, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		out = append(out, lang{Code: l, Name: l.Name(), Selected: l == cur})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) setListFilter(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Filter string `json:"filter"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	st, err := h.C.SetListFilter(in.Filter)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st.View)
}

func (h *Handlers) setRegion(w http.ResponseWriter, r *http.Request) {
	var reg domain.Region
	if !decodeBody(w, r, &reg) {
		return
	}
	if reg.LatitudeDelta <= 0 || reg.LongitudeDelta <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid region", "deltas must be positive")
		return
	}
	writeJSON(w, http.StatusOK, h.C.SetRegion(reg).View)
}

// toggleDarkMode answers as soon as the theme flipped; the data refresh
// that follows runs in the background.
func (h *Handlers) toggleDarkMode(w http.ResponseWriter, r *http.Request) {
	st := h.C.ToggleTheme()
	go h.C.Refresh(context.WithoutCancel(r.Context()))
	writeJSON(w, http.StatusAccepted, st.View)
}

func errString(err error) *string {
	if err == nil {
		return nil
	}
	s := err.Error()
	return &s
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	rep := h.C.Refresh(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        rep.OK(),
		"location":  errString(rep.Location),
		"favorites": errString(rep.Favorites),
		"spots":     errString(rep.Spots),
	})
}

func (h *Handlers) translate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	lang := h.C.Snapshot().View.Language
	if q := r.URL.Query().Get("lang"); q != "" {
		lang = i18n.Lang(q)
	}
	w.Header().Set("Content-Language", string(lang))
	writeJSON(w, http.StatusOK, map[string]string{
		"key":      key,
		"language": string(lang),
		"text":     i18n.Translate(lang, key),
	})
}

func (h *Handlers) mapStyle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapstyle.For(h.C.Snapshot().View.DarkMode))
}
