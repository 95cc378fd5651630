package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/loan-guide/internal/domain"
	"github.com/segyhp/loan-guide/internal/handler"
	"github.com/segyhp/loan-guide/internal/mocks"
	"github.com/segyhp/loan-guide/internal/report"
	"github.com/segyhp/loan-guide/internal/service"
	"github.com/segyhp/loan-guide/internal/timeline"
	customError "github.com/segyhp/loan-guide/pkg/errors"
)

var _ service.LoanGuideProvider = (*mocks.MockLoanGuideService)(nil)
var _ service.LoanGuideProvider = (*service.LoanGuideService)(nil)

func sampleView(loanID uuid.UUID) *domain.LoanGuideView {
	guide := domain.LoanGuide{
		LoanID: loanID,
		LoanAccounts: []domain.LoanAccountSummary{
			{
				LoanAccount: domain.LoanAccount{ID: uuid.MustParse("11111111-1111-4111-8111-111111111111"), Name: "Regular"},
				PaymentSchedules: []domain.PaymentSchedule{
					{PaymentDate: "2024-01-05", Type: domain.ScheduleTypePaid, AmountPaid: decimal.NewFromInt(500)},
					{PaymentDate: "2024-02-05", Type: domain.ScheduleTypeDue, AmountDue: decimal.NewFromInt(500)},
				},
			},
			{
				LoanAccount: domain.LoanAccount{ID: uuid.MustParse("22222222-2222-4222-8222-222222222222"), Name: "Emergency"},
				PaymentSchedules: []domain.PaymentSchedule{
					{PaymentDate: "2024-01-05", Type: domain.ScheduleTypeDue, AmountDue: decimal.NewFromInt(100)},
				},
			},
		},
	}
	rows := timeline.Build(guide)
	return &domain.LoanGuideView{
		LoanID:       loanID,
		LoanAccounts: guide.LoanAccounts,
		Timeline:     rows,
		Months:       timeline.GroupByMonth(rows),
	}
}

func newRouter(svc *mocks.MockLoanGuideService) http.Handler {
	log, _ := test.NewNullLogger()
	health := handler.NewHealthHandler(okDB{}, &fakeRedisPinger{}, 0)
	return handler.NewRouter(handler.NewLoanGuideHandler(svc, log), health, log)
}

func TestLoanGuideHandler_GetLoanGuide(t *testing.T) {
	loanID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockLoanGuideService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns the timeline",
			path: "/api/v1/loans/" + loanID.String() + "/guide",
			setupMock: func(m *mocks.MockLoanGuideService) {
				m.On("GetLoanGuideView", mock.Anything, loanID).Return(sampleView(loanID), nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body struct {
					Success bool `json:"success"`
					Data    struct {
						LoanID   string `json:"loan_id"`
						Timeline []struct {
							PaymentDate string                     `json:"payment_date"`
							Month       string                     `json:"month"`
							Schedules   map[string]json.RawMessage `json:"schedules"`
						} `json:"timeline"`
						Months []struct {
							Month string            `json:"month"`
							Rows  []json.RawMessage `json:"rows"`
						} `json:"months"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.True(t, body.Success)
				assert.Equal(t, loanID.String(), body.Data.LoanID)
				require.Len(t, body.Data.Timeline, 2)

				feb := body.Data.Timeline[1]
				assert.Equal(t, "Feb", feb.Month)
				require.Len(t, feb.Schedules, 2)
				assert.Equal(t, "null", string(feb.Schedules["22222222-2222-4222-8222-222222222222"]))
				assert.NotEqual(t, "null", string(feb.Schedules["11111111-1111-4111-8111-111111111111"]))

				require.Len(t, body.Data.Months, 2)
				assert.Equal(t, "Jan", body.Data.Months[0].Month)
			},
		},
		{
			name:           "rejects a malformed loan id",
			path:           "/api/v1/loans/not-a-uuid/guide",
			setupMock:      func(m *mocks.MockLoanGuideService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body customErrorBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, customError.ErrCodeInvalidLoanID, body.Code)
			},
		},
		{
			name: "unknown loan",
			path: "/api/v1/loans/" + loanID.String() + "/guide",
			setupMock: func(m *mocks.MockLoanGuideService) {
				m.On("GetLoanGuideView", mock.Anything, loanID).Return(nil, customError.WrapLoanGuideNotFound(loanID.String())).Once()
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body customErrorBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, customError.ErrCodeLoanGuideNotFound, body.Code)
				assert.False(t, body.Success)
			},
		},
		{
			name: "database unavailable",
			path: "/api/v1/loans/" + loanID.String() + "/guide",
			setupMock: func(m *mocks.MockLoanGuideService) {
				m.On("GetLoanGuideView", mock.Anything, loanID).Return(nil, customError.WrapDatabaseError(errors.New("conn refused"))).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body customErrorBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, customError.ErrCodeDatabaseError, body.Code)
				assert.NotContains(t, w.Body.String(), "conn refused")
			},
		},
		{
			name: "unexpected error",
			path: "/api/v1/loans/" + loanID.String() + "/guide",
			setupMock: func(m *mocks.MockLoanGuideService) {
				m.On("GetLoanGuideView", mock.Anything, loanID).Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLoanGuideService()
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}

type customErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestLoanGuideHandler_RefreshLoanGuide(t *testing.T) {
	loanID := uuid.New()
	svc := mocks.NewMockLoanGuideService()
	svc.On("RefreshLoanGuide", mock.Anything, loanID).Return(sampleView(loanID), nil).Once()

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/loans/"+loanID.String()+"/guide/refresh", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	w = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/loans/"+loanID.String()+"/guide/refresh", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestLoanGuideHandler_ExportLoanGuide(t *testing.T) {
	loanID := uuid.New()
	svc := mocks.NewMockLoanGuideService()
	svc.On("GetLoanGuideView", mock.Anything, loanID).Return(sampleView(loanID), nil).Once()

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/loans/"+loanID.String()+"/guide/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "loan_guide_"+loanID.String()+".xlsx")
	// xlsx files are zip archives
	assert.Equal(t, "PK", w.Body.String()[:2])
	svc.AssertExpectations(t)
}
