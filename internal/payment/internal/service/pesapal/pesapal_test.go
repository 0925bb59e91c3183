// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pesapal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, statusCode int, tokenCalls *int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		var req tokenReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "key", req.ConsumerKey)
		writeJSON(w, http.StatusOK, map[string]any{
			"token":      "token-1",
			"expiryDate": time.Now().Add(5 * time.Minute).UTC().Format(time.RFC3339Nano),
			"status":     "200",
		})
	})
	mux.HandleFunc("/api/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		var req submitOrderReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SN1", req.Id)
		assert.Equal(t, 999.5, req.Amount)
		assert.Equal(t, "ipn-1", req.NotificationId)
		writeJSON(w, http.StatusOK, map[string]any{
			"order_tracking_id":  "tracking-1",
			"merchant_reference": "SN1",
			"redirect_url":       "https://pay.pesapal.com/iframe?OrderTrackingId=tracking-1",
			"status":             "200",
		})
	})
	mux.HandleFunc("/api/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tracking-1", r.URL.Query().Get("orderTrackingId"))
		writeJSON(w, http.StatusOK, map[string]any{
			"status_code":                statusCode,
			"payment_status_description": "whatever",
			"merchant_reference":         "SN1",
			"error":                      map[string]any{"error_type": nil, "code": nil, "message": nil},
			"status":                     "200",
		})
	})
	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		want       domain.Status
	}{
		{name: "支付成功", statusCode: statusCompleted, want: domain.StatusPaidSuccess},
		{name: "支付失败", statusCode: statusFailed, want: domain.StatusPaidFailed},
		{name: "已撤销", statusCode: statusReversed, want: domain.StatusPaidFailed},
		{name: "还没有付款", statusCode: statusInvalid, want: domain.StatusProcessing},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokenCalls := 0
			server := newTestServer(t, tc.statusCode, &tokenCalls)
			defer server.Close()
			client := NewClient(Config{
				BaseURL:        server.URL,
				ConsumerKey:    "key",
				ConsumerSecret: "secret",
				IPNId:          "ipn-1",
				CallbackURL:    "https://jobmatch.example/payments/done",
			})
			ctx := context.Background()
			p := domain.Payment{SN: "SN1", Amount: 99950, Currency: "KES", Purpose: domain.PurposePremium, Days: 30}
			init, err := client.Initiate(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, "tracking-1", init.ProviderRef)
			assert.Contains(t, init.RedirectURL, "tracking-1")

			p.ProviderRef = init.ProviderRef
			status, err := client.Query(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
			// token 会被缓存
			assert.Equal(t, 1, tokenCalls)
		})
	}
}

func TestClient_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"error": map[string]any{
				"error_type": "api_error",
				"code":       "invalid_consumer_key_or_secret_provided",
				"message":    "Invalid consumer_key or consumer_secret provided",
			},
			"status": "500",
		})
	}))
	defer server.Close()
	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.Initiate(context.Background(), domain.Payment{SN: "SN1"})
	assert.ErrorIs(t, err, ErrPesapal)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
