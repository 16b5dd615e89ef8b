package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishantGawd/sj-fitness/internal/controller"
	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

// stubPaymentService lets controller tests dictate the service outcome.
type stubPaymentService struct {
	valid      bool
	verifyErr  error
	webhookErr error

	lastVerify    *model.VerifyPaymentRequest
	lastBody      []byte
	lastSignature string
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, req *model.VerifyPaymentRequest) (bool, error) {
	s.lastVerify = req
	return s.valid, s.verifyErr
}

func (s *stubPaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	s.lastBody = body
	s.lastSignature = signature
	return s.webhookErr
}

func postJSON(e *echo.Echo, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	newServer := func(stub *stubPaymentService) *echo.Echo {
		e := echo.New()
		controller.NewPaymentController(stub).RegisterRoutes(e)
		return e
	}

	t.Run("valid signature", func(t *testing.T) {
		stub := &stubPaymentService{valid: true}
		e := newServer(stub)

		rec := postJSON(e, "/api/razorpay/verify", `{
			"type": "order",
			"payload": {
				"razorpay_order_id": "order_abc",
				"razorpay_payment_id": "pay_xyz",
				"razorpay_signature": "deadbeef"
			}
		}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid": true}`, rec.Body.String())

		require.NotNil(t, stub.lastVerify)
		assert.Equal(t, "order", stub.lastVerify.Type)
		assert.Equal(t, "order_abc", stub.lastVerify.Payload.RazorpayOrderID)
	})

	t.Run("mismatch is 200 with valid false", func(t *testing.T) {
		e := newServer(&stubPaymentService{valid: false})

		rec := postJSON(e, "/api/razorpay/verify", `{"type":"order","payload":{}}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid": false}`, rec.Body.String())
	})

	t.Run("service errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"missing secret", service.ErrMissingSecret, http.StatusInternalServerError},
			{"invalid type", service.ErrInvalidVerifyType, http.StatusBadRequest},
			{"malformed payload", service.ErrMalformedPayload, http.StatusBadRequest},
			{"ledger write failed", service.ErrLedgerWrite, http.StatusBadGateway},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				e := newServer(&stubPaymentService{verifyErr: tc.err})

				rec := postJSON(e, "/api/razorpay/verify", `{"type":"order","payload":{}}`, nil)

				assert.Equal(t, tc.code, rec.Code)
			})
		}
	})

	t.Run("bad json body", func(t *testing.T) {
		e := newServer(&stubPaymentService{})

		rec := postJSON(e, "/api/razorpay/verify", `{nope`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
