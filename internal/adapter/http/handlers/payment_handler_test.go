package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"agency_billing/internal/adapter/http/handlers/mocks"
	"agency_billing/internal/domain/entities"
	"agency_billing/internal/usecase"
	"agency_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func samplePayment() entities.Payment {
	now := time.Now().UTC()
	return entities.Payment{
		ID:           "bill-1",
		QuoteID:      "q-1",
		CollectionID: "col-1",
		AmountSen:    19840,
		Currency:     "MYR",
		URL:          "https://www.billplz-sandbox.com/bills/bill-1",
		State:        "due",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses quote defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreatePaymentForQuote(gomock.Any(), "q-1", usecase.CreatePaymentOptions{}).
			Return(samplePayment(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("body overrides amount and payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreatePaymentForQuote(gomock.Any(), "q-1", usecase.CreatePaymentOptions{
			AmountAUD: 500,
			Email:     "payer@example.com",
			Mobile:    "+60123456789",
		}).Return(samplePayment(), nil)

		payload := `{"amount_aud":500,"email":"payer@example.com","mobile":"+60123456789"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not confirmed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreatePaymentForQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrQuoteNotConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider rejection maps to 502 with provider message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreatePaymentForQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, &interfaces.GatewayError{StatusCode: 422, Message: "Email is invalid"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["message"] != "Email is invalid" {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("provider unreachable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreatePaymentForQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, &interfaces.NetworkError{Op: "create bill", Err: http.ErrHandlerTimeout})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().GetByQuoteID(gomock.Any(), "missing", false).
			Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("refresh flag is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		paid := samplePayment()
		paid.Paid = true
		paid.State = "paid"
		uc.EXPECT().GetByQuoteID(gomock.Any(), "q-1", true).Return(paid, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1?refresh=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["paid"] != true || body["state"] != "paid" {
			t.Fatalf("unexpected response: %v", body)
		}
	})
}

func TestPaymentHandler_PaymentCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	postForm := func(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/callback", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("signature mismatch maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/callback", h.PaymentCallback)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, usecase.ErrSignatureMismatch)

		form := url.Values{}
		form.Set("id", "bill-1")
		form.Set("paid", "true")
		form.Set("x_signature", "bogus")
		w := postForm(r, form)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("verified callback applies fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/callback", h.PaymentCallback)

		paid := samplePayment()
		paid.Paid = true
		paid.State = "paid"
		uc.EXPECT().HandleCallback(gomock.Any(), map[string]string{
			"id":          "bill-1",
			"paid":        "true",
			"state":       "paid",
			"x_signature": "abc",
		}).Return(paid, nil)

		form := url.Values{}
		form.Set("id", "bill-1")
		form.Set("paid", "true")
		form.Set("state", "paid")
		form.Set("x_signature", "abc")
		w := postForm(r, form)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown bill maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/callback", h.PaymentCallback)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		form := url.Values{}
		form.Set("id", "ghost")
		form.Set("x_signature", "abc")
		w := postForm(r, form)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
