package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceware/prayerdeck/internal/api"
	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/internal/service/mocks"
	"github.com/graceware/prayerdeck/pkg/entity"
	jwtservice "github.com/graceware/prayerdeck/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	accountUID = "account-7"
	jwtSecret  = "test_secret"
	cardID     = uuid.New()
)

type scriptureStub struct {
	body         []byte
	err          error
	gotReference string
}

func (s *scriptureStub) Search(ctx context.Context, query string) ([]byte, error) {
	return s.body, s.err
}

func (s *scriptureStub) PassageText(ctx context.Context, reference string) ([]byte, error) {
	s.gotReference = reference
	return s.body, s.err
}

// testDeck wires gomock bundles behind the same facade production uses,
// so requests route by auth state exactly as they would in main.
type testDeck struct {
	server        *mocks.MockTrackingServiceI
	guest         *mocks.MockTrackingServiceI
	cards         *mocks.MockCardsServiceI
	requests      *mocks.MockRequestsServiceI
	categories    *mocks.MockCategoriesServiceI
	reminders     *mocks.MockRemindersServiceI
	guestCards    *mocks.MockCardsServiceI
	transfer      *mocks.MockTransferServiceI
	authorization string
	handler       http.Handler
}

func newTestDeck(t *testing.T, ctrl *gomock.Controller, scriptureClient *scriptureStub) *testDeck {
	t.Helper()
	td := &testDeck{
		server:     mocks.NewMockTrackingServiceI(ctrl),
		guest:      mocks.NewMockTrackingServiceI(ctrl),
		cards:      mocks.NewMockCardsServiceI(ctrl),
		requests:   mocks.NewMockRequestsServiceI(ctrl),
		categories: mocks.NewMockCategoriesServiceI(ctrl),
		reminders:  mocks.NewMockRemindersServiceI(ctrl),
		guestCards: mocks.NewMockCardsServiceI(ctrl),
		transfer:   mocks.NewMockTransferServiceI(ctrl),
	}
	serverBundle := &service.Services{
		Categories: td.categories,
		Cards:      td.cards,
		Requests:   td.requests,
		Tracking:   td.server,
		Reminders:  td.reminders,
	}
	guestBundle := &service.Services{
		Categories: td.categories,
		Cards:      td.guestCards,
		Requests:   td.requests,
		Tracking:   td.guest,
		Reminders:  td.reminders,
	}
	if scriptureClient == nil {
		scriptureClient = &scriptureStub{}
	}
	jwtService := jwtservice.New(jwtSecret)
	token, err := jwtService.GenerateToken(accountUID, "tester")
	require.NoError(t, err)
	td.authorization = "Bearer " + token
	serv := api.New(&api.ServicesList{
		Deck:       service.NewDeck(serverBundle, guestBundle, td.transfer),
		JwtService: jwtService,
		Scripture:  scriptureClient,
	})
	td.handler = serv.Mux()
	return td
}

func (td *testDeck) do(method, target, authorization string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	td.handler.ServeHTTP(rr, req)
	return rr
}

func TestMarkPrayedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	target := "/api/v1/prayer-cards/" + cardID.String() + "/pray"
	t.Run("authenticated mark hits the account backend", func(t *testing.T) {
		td.server.EXPECT().
			MarkPrayed(gomock.Any(), accountUID, cardID, gomock.Any()).
			Return(&service.MarkResult{
				Success: true,
				LevelUp: true,
				Stats:   &entity.PrayerStats{UserID: accountUID, TotalPrayers: 8, CurrentLevel: 2},
			}, nil)
		rr := td.do(http.MethodPost, target, td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result service.MarkResult
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.True(t, result.LevelUp)
		assert.Equal(t, 8, result.Stats.TotalPrayers)
	})
	t.Run("anonymous mark hits the guest backend", func(t *testing.T) {
		td.guest.EXPECT().
			MarkPrayed(gomock.Any(), entity.GuestUserID, cardID, gomock.Any()).
			Return(&service.MarkResult{Success: true, Stats: &entity.PrayerStats{UserID: entity.GuestUserID, TotalPrayers: 1, CurrentLevel: 1}}, nil)
		rr := td.do(http.MethodPost, target, "", nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("broken token is rejected, not downgraded to guest", func(t *testing.T) {
		rr := td.do(http.MethodPost, target, "Bearer not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("invalid card id", func(t *testing.T) {
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards/not-a-uuid/pray", td.authorization, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unknown card", func(t *testing.T) {
		td.server.EXPECT().
			MarkPrayed(gomock.Any(), accountUID, cardID, gomock.Any()).
			Return(nil, errorvalues.ErrCardNotFound)
		rr := td.do(http.MethodPost, target, td.authorization, nil)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		td.server.EXPECT().
			MarkPrayed(gomock.Any(), accountUID, cardID, gomock.Any()).
			Return(nil, errors.New("mocked error"))
		rr := td.do(http.MethodPost, target, td.authorization, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestUndoPrayerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	target := "/api/v1/prayer-cards/" + cardID.String() + "/undo"
	t.Run("undone", func(t *testing.T) {
		td.server.EXPECT().
			UndoPrayer(gomock.Any(), accountUID, cardID, gomock.Any()).
			Return(&entity.PrayerStats{UserID: accountUID, TotalPrayers: 7, CurrentLevel: 2}, nil)
		rr := td.do(http.MethodPost, target, td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("nothing to undo", func(t *testing.T) {
		td.server.EXPECT().
			UndoPrayer(gomock.Any(), accountUID, cardID, gomock.Any()).
			Return(nil, errorvalues.ErrLogNotFound)
		rr := td.do(http.MethodPost, target, td.authorization, nil)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestBatchStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	otherID := uuid.New()
	t.Run("resolves all requested ids", func(t *testing.T) {
		body, err := sonic.Marshal(api.BatchStatusRequest{CardIDs: []string{cardID.String(), otherID.String()}})
		require.NoError(t, err)
		td.server.EXPECT().
			BatchStatus(gomock.Any(), accountUID, []uuid.UUID{cardID, otherID}, gomock.Any()).
			Return(map[uuid.UUID]bool{cardID: true, otherID: false}, nil)
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards/status", td.authorization, body)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var status map[string]bool
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &status))
		assert.True(t, status[cardID.String()])
		assert.False(t, status[otherID.String()])
	})
	t.Run("invalid id in body", func(t *testing.T) {
		body, err := sonic.Marshal(api.BatchStatusRequest{CardIDs: []string{"nope"}})
		require.NoError(t, err)
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards/status", td.authorization, body)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards/status", td.authorization, []byte("{"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetDueCardsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	due := []*entity.PrayerCardDetails{
		{PrayerCard: entity.PrayerCard{ID: cardID, UserID: accountUID, Name: "due_card", Frequency: entity.FrequencyDaily}},
	}
	t.Run("due list", func(t *testing.T) {
		td.cards.EXPECT().
			ListDue(gomock.Any(), accountUID, gomock.Any()).
			Return(due, nil)
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards/due", td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result []*entity.PrayerCardDetails
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &result))
		if assert.Len(t, result, 1) {
			assert.Equal(t, "due_card", result[0].Name)
		}
	})
	t.Run("guest due list", func(t *testing.T) {
		td.guestCards.EXPECT().
			ListDue(gomock.Any(), entity.GuestUserID, gomock.Any()).
			Return([]*entity.PrayerCardDetails{}, nil)
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards/due", "", nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		td.cards.EXPECT().
			ListDue(gomock.Any(), accountUID, gomock.Any()).
			Return(nil, errors.New("mocked error"))
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards/due", td.authorization, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetCardsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	t.Run("no filter lists everything", func(t *testing.T) {
		td.cards.EXPECT().
			List(gomock.Any(), accountUID).
			Return([]*entity.PrayerCardDetails{}, nil)
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards", td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("frequency filter carries the day fields", func(t *testing.T) {
		td.cards.EXPECT().
			ListFiltered(gomock.Any(), accountUID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filter *service.ListCardsFilter) ([]*entity.PrayerCardDetails, error) {
				assert.Equal(t, "weekly", filter.Frequency)
				if assert.NotNil(t, filter.DayOfWeek) {
					assert.Equal(t, "Wednesday", *filter.DayOfWeek)
				}
				assert.Nil(t, filter.DayOfMonth)
				return []*entity.PrayerCardDetails{
					{PrayerCard: entity.PrayerCard{ID: cardID, UserID: accountUID, Name: "weekly_card", Frequency: entity.FrequencyWeekly}},
				}, nil
			})
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards?frequency=weekly&dayOfWeek=Wednesday", td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result []*entity.PrayerCardDetails
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &result))
		if assert.Len(t, result, 1) {
			assert.Equal(t, "weekly_card", result[0].Name)
		}
	})
	t.Run("monthly filter parses the day number", func(t *testing.T) {
		td.cards.EXPECT().
			ListFiltered(gomock.Any(), accountUID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filter *service.ListCardsFilter) ([]*entity.PrayerCardDetails, error) {
				assert.Equal(t, "monthly", filter.Frequency)
				if assert.NotNil(t, filter.DayOfMonth) {
					assert.Equal(t, 14, *filter.DayOfMonth)
				}
				return []*entity.PrayerCardDetails{}, nil
			})
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards?frequency=monthly&dayOfMonth=14", td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("non-numeric day of month", func(t *testing.T) {
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards?frequency=monthly&dayOfMonth=soon", td.authorization, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("filter rejected by validation", func(t *testing.T) {
		td.cards.EXPECT().
			ListFiltered(gomock.Any(), accountUID, gomock.Any()).
			Return(nil, errorvalues.ErrInvalidSchedule)
		rr := td.do(http.MethodGet, "/api/v1/prayer-cards?frequency=yearly", td.authorization, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestCreateCardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	body, err := sonic.Marshal(api.CardRequest{Name: "new_card", Frequency: "daily"})
	require.NoError(t, err)
	t.Run("created", func(t *testing.T) {
		td.cards.EXPECT().
			Create(gomock.Any(), accountUID, gomock.Any()).
			Return(&entity.PrayerCardDetails{PrayerCard: entity.PrayerCard{ID: cardID, Name: "new_card"}}, nil)
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards", td.authorization, body)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("invalid schedule", func(t *testing.T) {
		td.cards.EXPECT().
			Create(gomock.Any(), accountUID, gomock.Any()).
			Return(nil, errorvalues.ErrInvalidSchedule)
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards", td.authorization, body)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards", td.authorization, []byte("{"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unknown category", func(t *testing.T) {
		td.cards.EXPECT().
			Create(gomock.Any(), accountUID, gomock.Any()).
			Return(nil, errorvalues.ErrCategoryNotFound)
		rr := td.do(http.MethodPost, "/api/v1/prayer-cards", td.authorization, body)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	t.Run("requires an account", func(t *testing.T) {
		rr := td.do(http.MethodPost, "/api/v1/transfer", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("transferred", func(t *testing.T) {
		td.transfer.EXPECT().
			Transfer(gomock.Any(), accountUID).
			Return(&service.TransferReport{Categories: 1, Cards: 3, Requests: 2}, nil)
		rr := td.do(http.MethodPost, "/api/v1/transfer", td.authorization, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var report service.TransferReport
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &report))
		assert.Equal(t, 3, report.Cards)
	})
	t.Run("nothing to transfer", func(t *testing.T) {
		td.transfer.EXPECT().
			Transfer(gomock.Any(), accountUID).
			Return(nil, errorvalues.ErrNoGuestData)
		rr := td.do(http.MethodPost, "/api/v1/transfer", td.authorization, nil)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("partial failure", func(t *testing.T) {
		td.transfer.EXPECT().
			Transfer(gomock.Any(), accountUID).
			Return(nil, errors.New("mocked error"))
		rr := td.do(http.MethodPost, "/api/v1/transfer", td.authorization, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestScriptureHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	t.Run("search requires a query", func(t *testing.T) {
		td := newTestDeck(t, ctrl, nil)
		rr := td.do(http.MethodGet, "/api/v1/scripture/search", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("search passes the upstream body through", func(t *testing.T) {
		td := newTestDeck(t, ctrl, &scriptureStub{body: []byte(`{"results":[]}`)})
		rr := td.do(http.MethodGet, "/api/v1/scripture/search?q=peace", "", nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"results":[]}`, rr.Body.String())
	})
	t.Run("text reads the q param", func(t *testing.T) {
		stub := &scriptureStub{body: []byte(`{"passages":["For God so loved the world"]}`)}
		td := newTestDeck(t, ctrl, stub)
		rr := td.do(http.MethodGet, "/api/v1/scripture/text?q=John+3:16", "", nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, "John 3:16", stub.gotReference)
	})
	t.Run("text requires a query", func(t *testing.T) {
		td := newTestDeck(t, ctrl, nil)
		rr := td.do(http.MethodGet, "/api/v1/scripture/text?reference=John+3:16", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		td := newTestDeck(t, ctrl, &scriptureStub{err: errors.New("mocked error")})
		rr := td.do(http.MethodGet, "/api/v1/scripture/text?q=John+3:16", "", nil)
		assert.Equal(t, http.StatusBadGateway, rr.Result().StatusCode)
	})
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	td := newTestDeck(t, ctrl, nil)
	rr := td.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Equal(t, "ok", rr.Body.String())
}
