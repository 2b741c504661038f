package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/pkg/httputil"
	"github.com/graceware/prayerdeck/pkg/metrics"
)

type BatchStatusRequest struct {
	CardIDs []string `json:"card_ids"`
}

type ReminderSettingsRequest struct {
	EnableReminders            bool     `json:"enable_reminders"`
	ReminderTimes              []string `json:"reminder_times"`
	Timezone                   string   `json:"timezone"`
	EnableBrowserNotifications bool     `json:"enable_browser_notifications"`
}

func (s *Server) MarkPrayed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("mark prayed error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("mark prayed error: invalid card id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := services.Tracking.MarkPrayed(ctx, uid, cardID, time.Now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			logger.Error("mark prayed error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
			return
		}
		logger.Error("mark prayed error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking prayer", nil)
		return
	}
	if result.AlreadyPrayed {
		metrics.IncrementPrayersMarked("already_prayed")
	} else {
		metrics.IncrementPrayersMarked("marked")
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("prayer marked",
		slog.Bool("already_prayed", result.AlreadyPrayed),
		slog.Bool("level_up", result.LevelUp))
}

func (s *Server) UndoPrayer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("undo prayer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("undo prayer error: invalid card id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := services.Tracking.UndoPrayer(ctx, uid, cardID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCardNotFound):
			logger.Error("undo prayer error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrLogNotFound):
			logger.Error("undo prayer error: nothing to undo in current period")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no prayer to undo in the current period", nil)
		default:
			logger.Error("undo prayer error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while undoing prayer", nil)
		}
		return
	}
	metrics.IncrementPrayersMarked("undone")
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("prayer undone")
}

func (s *Server) HasPrayedToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("prayed today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("prayed today error: invalid card id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	prayed, err := services.Tracking.HasPrayedToday(ctx, uid, cardID, time.Now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			logger.Error("prayed today error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
			return
		}
		logger.Error("prayed today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking prayer status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"has_prayed_today": prayed})
}

func (s *Server) BatchStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("batch status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req BatchStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("batch status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	cardIDs := make([]uuid.UUID, 0, len(req.CardIDs))
	for _, raw := range req.CardIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("batch status error: invalid card id in body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id: "+raw, nil)
			return
		}
		cardIDs = append(cardIDs, id)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	status, err := services.Tracking.BatchStatus(ctx, uid, cardIDs, time.Now())
	if err != nil {
		logger.Error("batch status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving prayer status", nil)
		return
	}
	// Map keys become strings for JSON
	body := make(map[string]bool, len(status))
	for id, prayed := range status {
		body[id.String()] = prayed
	}
	httputil.WriteJSONResponse(w, http.StatusOK, body)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := services.Tracking.GetStats(ctx, uid)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting prayer stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetReminderSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := services.Reminders.Get(ctx, uid)
	if err != nil {
		logger.Error("get reminders error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting reminder settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateReminderSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("update reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReminderSettingsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update reminders error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := services.Reminders.Update(ctx, uid, &service.UpdateRemindersRequest{
		EnableReminders:            req.EnableReminders,
		ReminderTimes:              req.ReminderTimes,
		Timezone:                   req.Timezone,
		EnableBrowserNotifications: req.EnableBrowserNotifications,
	})
	if err != nil {
		if isBadInput(err) {
			logger.Error("update reminders error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder settings fields", err)
			return
		}
		logger.Error("update reminders error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating reminder settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("reminder settings updated")
}

func (s *Server) SearchScripture(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query().Get("q")
	if query == "" {
		logger.Error("scripture search error: empty query")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "search query is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	body, err := s.scripture.Search(ctx, query)
	if err != nil {
		logger.Error("scripture search error: upstream error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "scripture search failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) GetScriptureText(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	reference := r.URL.Query().Get("q")
	if reference == "" {
		logger.Error("scripture text error: empty reference")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "scripture reference is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	body, err := s.scripture.PassageText(ctx, reference)
	if err != nil {
		logger.Error("scripture text error: upstream error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "scripture text lookup failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) TransferGuestData(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, authed, err := GetUIDFromContext(r)
	if err != nil || !authed {
		logger.Error("transfer error: requires an authenticated account")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "transfer requires an authenticated account", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	report, err := s.deck.Transfer().Transfer(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoGuestData) {
			metrics.IncrementTransfers("empty")
			logger.Error("transfer error: no guest data")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no guest data to transfer", nil)
			return
		}
		metrics.IncrementTransfers("failed")
		logger.Error("transfer error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "transfer failed; account data may be partial", nil)
		return
	}
	metrics.IncrementTransfers("success")
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("guest data transferred",
		slog.Int("categories", report.Categories),
		slog.Int("cards", report.Cards),
		slog.Int("requests", report.Requests))
}
