package operationdelivery

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestPut(t *testing.T) {
	id := randompkg.OperationID()

	testCases := []struct {
		name           string
		path           string
		body           string
		buildStubs     func(operationService *MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "OK",
			path: "/operation/" + id,
			body: `{"1":"USD-1","2":"USD 1.00"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Eq(map[string]string{"1": "USD-1", "2": "USD 1.00"})).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{}`,
		},
		{
			name: "EmptyObject",
			path: "/operation/" + id,
			body: `{}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Eq(map[string]string{})).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{}`,
		},
		{
			name: "NotAnObject",
			path: "/operation/" + id,
			body: `["USD1"]`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"invalid json"}`,
		},
		{
			name: "NonStringAmount",
			path: "/operation/" + id,
			body: `{"1":1}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"invalid json"}`,
		},
		{
			name: "MissingID",
			path: "/operation/",
			body: `{}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(""), gomock.Any()).
					Times(1).
					Return(domain.ErrOperationIDMissing)
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"operation id is missing"}`,
		},
		{
			name: "AccountNotFound",
			path: "/operation/" + id,
			body: `{"4":"USD1"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Any()).
					Times(1).
					Return(fmt.Errorf("%w: 4", domain.ErrAccountNotFound))
			},
			wantStatusCode: http.StatusNotFound,
			wantBody:       `{"error":"account not found: 4"}`,
		},
		{
			name: "Mismatch",
			path: "/operation/" + id,
			body: `{"1":"GBP-1"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Any()).
					Times(1).
					Return(domain.ErrOperationMismatch)
			},
			wantStatusCode: http.StatusConflict,
			wantBody:       `{"error":"operation mismatch"}`,
		},
		{
			name: "InsufficientBalance",
			path: "/operation/" + id,
			body: `{"1":"USD-1"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Any()).
					Times(1).
					Return(domain.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusPreconditionFailed,
			wantBody:       `{"error":"insufficient balance"}`,
		},
		{
			name: "CurrencyMismatch",
			path: "/operation/" + id,
			body: `{"1":"GBP1"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Any()).
					Times(1).
					Return(fmt.Errorf("%w: USD/GBP", moneypkg.ErrCurrencyMismatch))
			},
			wantStatusCode: http.StatusPreconditionFailed,
			wantBody:       `{"error":"Currencies differ: USD/GBP"}`,
		},
		{
			name: "InternalServerError",
			path: "/operation/" + id,
			body: `{"1":"USD1"}`,
			buildStubs: func(operationService *MockService) {
				operationService.EXPECT().
					Apply(gomock.Any(), gomock.Eq(id), gomock.Any()).
					Times(1).
					Return(errors.New("boom"))
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"internal"}`,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			operationService := NewMockService(ctrl)
			tc.buildStubs(operationService)

			r := gin.New()
			r.PUT("/operation/*id", NewHandler(operationService).Put)

			req := httptest.NewRequest(http.MethodPut, tc.path, bytes.NewBufferString(tc.body))
			recorder := httptest.NewRecorder()

			r.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if got := recorder.Body.String(); got != tc.wantBody {
				t.Errorf("Body: got %s, want %s", got, tc.wantBody)
			}
		})
	}
}
