package token

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"vaultwise/config"
	"vaultwise/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CustodyClient implements ports.TokenTransferor against the external
// token custody service. The engine treats the primitive as opaque:
// transfer either happened or it did not; amounts are integers in the
// token's smallest unit.
type CustodyClient struct {
	baseURL   string
	accessKey string
	secretKey string
	accountID string
	sigSvc    ports.SignatureService
	client    HTTPClient
	log       zerolog.Logger
}

// NewCustodyClient creates a custody API client. Requests are signed
// HMAC-SHA256 over the canonical string the custody service verifies.
func NewCustodyClient(cfg config.CustodyConfig, sigSvc ports.SignatureService, client HTTPClient, log zerolog.Logger) *CustodyClient {
	return &CustodyClient{
		baseURL:   cfg.BaseURL,
		accessKey: cfg.AccessKey,
		secretKey: cfg.SecretKey,
		accountID: cfg.AccountID,
		sigSvc:    sigSvc,
		client:    client,
		log:       log,
	}
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type transferResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type balanceResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

// Transfer moves amount from the ledger's custody account to the recipient.
func (c *CustodyClient) Transfer(ctx context.Context, to string, amount int64) error {
	return c.execTransfer(ctx, transferRequest{From: c.accountID, To: to, Amount: amount})
}

// TransferFrom pulls amount from the holder into the ledger's custody
// account. The holder must have approved the ledger beforehand.
func (c *CustodyClient) TransferFrom(ctx context.Context, from string, amount int64) error {
	return c.execTransfer(ctx, transferRequest{From: from, To: c.accountID, Amount: amount})
}

// Balance returns the ledger custody account's available balance.
func (c *CustodyClient) Balance(ctx context.Context) (int64, error) {
	path := "/api/v1/accounts/" + c.accountID + "/balance"
	req, err := c.newSignedRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("custody balance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("custody balance: unexpected status %d", resp.StatusCode)
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}
	return body.Balance, nil
}

func (c *CustodyClient) execTransfer(ctx context.Context, tr transferRequest) error {
	if tr.Amount <= 0 {
		return fmt.Errorf("custody transfer: non-positive amount %d", tr.Amount)
	}

	payload, err := json.Marshal(tr)
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := c.newSignedRequest(ctx, http.MethodPost, "/api/v1/transfers", payload)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("custody transfer request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body transferResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("custody transfer: status %d, undecodable body", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("from", tr.From).
			Str("to", tr.To).
			Int64("amount", tr.Amount).
			Str("error", body.Error).
			Msg("custody transfer rejected")
		return fmt.Errorf("custody transfer rejected: %s", body.Error)
	}
	return nil
}

// newSignedRequest builds a request carrying the access key, a
// timestamp, a fresh nonce and the HMAC signature over the canonical
// string.
func (c *CustodyClient) newSignedRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build custody request: %w", err)
	}

	now := time.Now().Unix()
	nonce := uuid.NewString()
	canonical := c.sigSvc.BuildCanonicalString(method, path, now, nonce, string(body))

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Access-Key", c.accessKey)
	req.Header.Set("X-Timestamp", strconv.FormatInt(now, 10))
	req.Header.Set("X-Nonce", nonce)
	req.Header.Set("X-Signature", c.sigSvc.Sign(c.secretKey, canonical))

	return req, nil
}
