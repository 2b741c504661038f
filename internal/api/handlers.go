package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/pkg/entity"
	"github.com/graceware/prayerdeck/pkg/httputil"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type CardRequest struct {
	Name                string   `json:"name"`
	Frequency           string   `json:"frequency"`
	DayOfWeek           *string  `json:"day_of_week"`
	DayOfMonth          *int     `json:"day_of_month"`
	DaysOfMonth         []int    `json:"days_of_month"`
	CategoryID          *string  `json:"category_id"`
	Scriptures          []string `json:"scriptures"`
	ScriptureReferences []string `json:"scripture_references"`
}

type PrayerRequestBody struct {
	Text string `json:"text"`
}

// isBadInput groups the caller-fixable failures: field validation and
// recurrence fields that disagree with the frequency.
func isBadInput(err error) bool {
	var vErrs validator.ValidationErrors
	return errors.As(err, &vErrs) || errors.Is(err, errorvalues.ErrInvalidSchedule)
}

func (s *Server) services(r *http.Request) (*service.Services, string, error) {
	uid, authed, err := GetUIDFromContext(r)
	if err != nil {
		return nil, "", err
	}
	return s.deck.For(authed), uid, nil
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get categories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	categories, err := services.Categories.List(ctx, uid)
	if err != nil {
		logger.Error("get categories error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting categories", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, categories)
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("create category error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateCategoryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create category error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	category, err := services.Categories.Create(ctx, uid, &service.CreateCategoryRequest{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		if isBadInput(err) {
			logger.Error("create category error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category fields", err)
			return
		}
		logger.Error("create category error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating category", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, category)
	logger.Info("category created")
}

func (s *Server) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get cards error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	filter, err := cardListFilter(r)
	if err != nil {
		logger.Error("get cards error: invalid filter params")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid card filter params", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var cards []*entity.PrayerCardDetails
	if filter != nil {
		cards, err = services.Cards.ListFiltered(ctx, uid, filter)
	} else {
		cards, err = services.Cards.List(ctx, uid)
	}
	if err != nil {
		if isBadInput(err) {
			logger.Error("get cards error: invalid filter fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid card filter params", err)
			return
		}
		logger.Error("get cards error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting prayer cards", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cards)
}

// cardListFilter reads the optional recurrence filter off the query
// string. A nil filter with nil error means no filter was requested.
func cardListFilter(r *http.Request) (*service.ListCardsFilter, error) {
	query := r.URL.Query()
	frequency := query.Get("frequency")
	if frequency == "" {
		return nil, nil
	}
	filter := service.ListCardsFilter{Frequency: frequency}
	if day := query.Get("dayOfWeek"); day != "" {
		filter.DayOfWeek = &day
	}
	if raw := query.Get("dayOfMonth"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		filter.DayOfMonth = &day
	}
	return &filter, nil
}

func (s *Server) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get due cards error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	cards, err := services.Cards.ListDue(ctx, uid, time.Now())
	if err != nil {
		logger.Error("get due cards error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting due prayer cards", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cards)
}

func (s *Server) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("create card error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CardRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create card error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq, err := cardServiceRequest(&req)
	if err != nil {
		logger.Error("create card error: invalid category id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := services.Cards.Create(ctx, uid, serviceReq)
	if err != nil {
		switch {
		case isBadInput(err):
			logger.Error("create card error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card fields", err)
		case errors.Is(err, errorvalues.ErrCategoryNotFound):
			logger.Error("create card error: unexist category")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		default:
			logger.Error("create card error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating prayer card", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, card)
	logger.Info("prayer card created")
}

func (s *Server) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get card error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("get card error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := services.Cards.Get(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			logger.Error("get card error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
			return
		}
		logger.Error("get card error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting prayer card", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
}

func (s *Server) UpdateCard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("update card error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("update card error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	var req CardRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update card error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq, err := cardServiceRequest(&req)
	if err != nil {
		logger.Error("update card error: invalid category id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := services.Cards.Update(ctx, id, uid, &service.UpdateCardRequest{
		Name:                serviceReq.Name,
		Frequency:           serviceReq.Frequency,
		DayOfWeek:           serviceReq.DayOfWeek,
		DayOfMonth:          serviceReq.DayOfMonth,
		DaysOfMonth:         serviceReq.DaysOfMonth,
		CategoryID:          serviceReq.CategoryID,
		Scriptures:          serviceReq.Scriptures,
		ScriptureReferences: serviceReq.ScriptureReferences,
	})
	if err != nil {
		switch {
		case isBadInput(err):
			logger.Error("update card error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card fields", err)
		case errors.Is(err, errorvalues.ErrCardNotFound):
			logger.Error("update card error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
		default:
			logger.Error("update card error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating prayer card", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
	logger.Info("prayer card updated")
}

func (s *Server) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("card deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("card deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = services.Cards.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			logger.Error("card deletion error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
			return
		}
		logger.Error("card deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting prayer card", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("prayer card deleted")
}

func (s *Server) GetRequests(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("get requests error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("get requests error: invalid card id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	requests, err := services.Requests.ListByCard(ctx, cardID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			logger.Error("get requests error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
			return
		}
		logger.Error("get requests error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting prayer requests", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, requests)
}

func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("create request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("create request error: invalid card id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer card id in path value", nil)
		return
	}
	var req PrayerRequestBody
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create request error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	request, err := services.Requests.Create(ctx, cardID, uid, &service.CreatePrayerRequestRequest{
		Text: req.Text,
	})
	if err != nil {
		switch {
		case isBadInput(err):
			logger.Error("create request error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer request fields", err)
		case errors.Is(err, errorvalues.ErrCardNotFound):
			logger.Error("create request error: unexist card")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer card doesn't exist", nil)
		default:
			logger.Error("create request error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating prayer request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, request)
	logger.Info("prayer request created")
}

func (s *Server) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("update request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("update request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer request id in path value", nil)
		return
	}
	var req PrayerRequestBody
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update request error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	request, err := services.Requests.Update(ctx, id, uid, &service.CreatePrayerRequestRequest{
		Text: req.Text,
	})
	if err != nil {
		switch {
		case isBadInput(err):
			logger.Error("update request error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer request fields", err)
		case errors.Is(err, errorvalues.ErrRequestNotFound):
			logger.Error("update request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer request doesn't exist", nil)
		default:
			logger.Error("update request error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating prayer request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, request)
	logger.Info("prayer request updated")
}

func (s *Server) ArchiveRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("archive request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("archive request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer request id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = services.Requests.Archive(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			logger.Error("archive request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer request doesn't exist", nil)
			return
		}
		logger.Error("archive request error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while archiving prayer request", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("prayer request archived")
}

func (s *Server) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	services, uid, err := s.services(r)
	if err != nil {
		logger.Error("request deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("request deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prayer request id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = services.Requests.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			logger.Error("request deletion error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prayer request doesn't exist", nil)
			return
		}
		logger.Error("request deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting prayer request", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("prayer request deleted")
}

func cardServiceRequest(req *CardRequest) (*service.CreateCardRequest, error) {
	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = &id
	}
	return &service.CreateCardRequest{
		Name:                req.Name,
		Frequency:           req.Frequency,
		DayOfWeek:           req.DayOfWeek,
		DayOfMonth:          req.DayOfMonth,
		DaysOfMonth:         req.DaysOfMonth,
		CategoryID:          categoryID,
		Scriptures:          req.Scriptures,
		ScriptureReferences: req.ScriptureReferences,
	}, nil
}
