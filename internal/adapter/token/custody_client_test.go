package token

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaultwise/config"
	"vaultwise/internal/service"
	"vaultwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *CustodyClient {
	t.Helper()
	cfg := config.CustodyConfig{
		BaseURL:   serverURL,
		AccessKey: "ak_test",
		SecretKey: "sk_test",
		AccountID: "vaultwise-ledger",
		Timeout:   5 * time.Second,
	}
	log := logger.New("error", false)
	return NewCustodyClient(cfg, service.NewHMACSignatureService(), &http.Client{Timeout: cfg.Timeout}, log)
}

func TestCustodyClient_TransferSignsRequest(t *testing.T) {
	sigSvc := service.NewHMACSignatureService()

	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transfers", r.URL.Path)
		assert.Equal(t, "ak_test", r.Header.Get("X-Access-Key"))
		assert.NotEmpty(t, r.Header.Get("X-Timestamp"))
		assert.NotEmpty(t, r.Header.Get("X-Nonce"))
		assert.NotEmpty(t, r.Header.Get("X-Signature"))

		body := make([]byte, r.ContentLength)
		_, err := r.Body.Read(body)
		if err != nil && err.Error() != "EOF" {
			t.Fatalf("read body: %v", err)
		}
		require.NoError(t, json.Unmarshal(body, &got))

		// The server verifies the signature the same way the client built it.
		ts := r.Header.Get("X-Timestamp")
		var tsv int64
		for _, c := range ts {
			tsv = tsv*10 + int64(c-'0')
		}
		canonical := sigSvc.BuildCanonicalString(r.Method, r.URL.Path, tsv, r.Header.Get("X-Nonce"), string(body))
		assert.True(t, sigSvc.Verify("sk_test", canonical, r.Header.Get("X-Signature")))

		json.NewEncoder(w).Encode(transferResponse{Success: true})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.Transfer(context.Background(), "acct-recipient", 2500))

	assert.Equal(t, "vaultwise-ledger", got.From)
	assert.Equal(t, "acct-recipient", got.To)
	assert.Equal(t, int64(2500), got.Amount)
}

func TestCustodyClient_TransferFromPullsIntoLedgerAccount(t *testing.T) {
	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(transferResponse{Success: true})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.TransferFrom(context.Background(), "acct-depositor", 1000))

	assert.Equal(t, "acct-depositor", got.From)
	assert.Equal(t, "vaultwise-ledger", got.To)
}

func TestCustodyClient_TransferRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(transferResponse{Success: false, Error: "insufficient funds"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	err := client.Transfer(context.Background(), "acct-recipient", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestCustodyClient_TransferRejectsNonPositiveAmount(t *testing.T) {
	client := newTestClient(t, "http://unreachable.invalid")
	assert.Error(t, client.Transfer(context.Background(), "acct", 0))
	assert.Error(t, client.TransferFrom(context.Background(), "acct", -5))
}

func TestCustodyClient_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/accounts/vaultwise-ledger/balance", r.URL.Path)
		json.NewEncoder(w).Encode(balanceResponse{Account: "vaultwise-ledger", Balance: 987654})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	bal, err := client.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(987654), bal)
}
