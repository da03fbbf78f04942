package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaultwise/config"
	"vaultwise/internal/adapter/http/dto"
	httpHandler "vaultwise/internal/adapter/http/handler"
	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp runs the full HTTP stack against in-memory stores and a
// custody stub, with a steerable clock.
type testApp struct {
	store   *memStore
	custody *custodyStub
	clock   *fixedClock
	events  *eventSink
	server  *httptest.Server
}

func testLedgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		FeeBps:                    25,
		FeeRecipient:              "treasury",
		MinDeposit:                100,
		BillingsOverflowThreshold: 1_000_000,
		EmergencyDelay:            24 * time.Hour,
		GoalBonusAPYBps:           500,
		GoalMaxHorizon:            5 * 365 * 24 * time.Hour,
	}
}

func testPayrollConfig() config.PayrollConfig {
	return config.PayrollConfig{
		MinSalary:            100,
		MaxSalary:            1_000_000_000,
		MaxEmployeesPerBatch: 100,
		ScheduleHorizon:      365 * 24 * time.Hour,
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := newMemStore()
	custody := newCustodyStub()
	clock := &fixedClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	events := &eventSink{}
	guard := newMemOpGuard()
	log := zerolog.Nop()

	ledgerCfg := testLedgerConfig()
	payrollCfg := testPayrollConfig()

	accounts := &memAccounts{store: store}
	splits := &memSplits{store: store}
	buckets := &memBuckets{store: store}
	meta := &memMeta{store: store}
	guards := &memGuard{store: store}
	goals := &memGoals{store: store}
	payroll := &memPayroll{store: store}
	transactor := &memTransactor{store: store}

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("integration-test-secret", time.Hour, "vaultwise-test")

	authSvc := service.NewAuthService(accounts, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(
		accounts, splits, buckets, meta, guards,
		custody, guard, events, transactor, clock, ledgerCfg, log,
	)
	goalSvc := service.NewGoalService(
		goals, buckets, guard, events, transactor, clock, ledgerCfg, log,
	)
	payrollSvc := service.NewPayrollService(
		payroll, accounts, custody, guard, events, transactor, clock, payrollCfg, ledgerCfg, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		GoalSvc:        goalSvc,
		PayrollSvc:     payrollSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: nil,
		HealthCheckers: []ports.HealthChecker{},
		EmergencyDelay: ledgerCfg.EmergencyDelay,
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		store:   store,
		custody: custody,
		clock:   clock,
		events:  events,
		server:  server,
	}
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (app *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

func decodeInto(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func (app *testApp) register(t *testing.T, username, custodyID string) (uuid.UUID, string) {
	t.Helper()

	status, env := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username":     username,
		"password":     "Sup3rStr0ngPass!",
		"display_name": username,
		"custody_id":   custodyID,
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %s", env.Message)

	var reg dto.RegisterResponse
	decodeInto(t, env, &reg)
	return uuid.MustParse(reg.AccountID), app.login(t, username)
}

func (app *testApp) login(t *testing.T, username string) string {
	t.Helper()

	status, env := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": "Sup3rStr0ngPass!",
	})
	require.Equal(t, http.StatusOK, status, "login failed: %s", env.Message)

	var login dto.LoginResponse
	decodeInto(t, env, &login)
	return login.Token
}

func (app *testApp) setSplitConfig(t *testing.T, token string, weights map[string]int64) {
	t.Helper()
	status, env := app.do(t, http.MethodPut, "/api/v1/ledger/split-config", token, weights)
	require.Equal(t, http.StatusNoContent, status, "set split config failed: %s", env.Message)
}

func (app *testApp) deposit(t *testing.T, token string, amount int64) dto.DepositResponse {
	t.Helper()
	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/deposits", token, map[string]any{"amount": amount})
	require.Equal(t, http.StatusCreated, status, "deposit failed: %s", env.Message)
	var dep dto.DepositResponse
	decodeInto(t, env, &dep)
	return dep
}

func (app *testApp) balances(t *testing.T, token string) dto.BalancesResponse {
	t.Helper()
	status, env := app.do(t, http.MethodGet, "/api/v1/ledger/balances", token, nil)
	require.Equal(t, http.StatusOK, status)
	var bal dto.BalancesResponse
	decodeInto(t, env, &bal)
	return bal
}

func TestDepositSplitFlow(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "splitter", "cust-splitter")

	// Deposit before configuring weights is rejected.
	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/deposits", token, map[string]any{"amount": 10_000})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_001", env.ErrorCode)

	app.setSplitConfig(t, token, map[string]int64{
		"billings": 2000, "savings": 3000, "growth": 1000, "instant": 1500, "spendable": 2500,
	})

	dep := app.deposit(t, token, 10_000)
	assert.Equal(t, int64(25), dep.Fee)
	assert.Equal(t, int64(9_975), dep.Net)
	assert.Equal(t, int64(1_995), dep.Allocations["billings"])
	assert.Equal(t, int64(2_992), dep.Allocations["savings"])
	assert.Equal(t, int64(997), dep.Allocations["growth"])
	assert.Equal(t, int64(1_496), dep.Allocations["instant"])
	assert.Equal(t, int64(2_495), dep.Allocations["spendable"])

	// Allocations conserve the net amount exactly.
	sum := int64(0)
	for _, v := range dep.Allocations {
		sum += v
	}
	assert.Equal(t, dep.Net, sum)

	bal := app.balances(t, token)
	assert.Equal(t, int64(9_975), bal.Total)
	assert.Equal(t, int64(9_975), app.store.currentTVL())
	assert.Equal(t, app.store.sumBalances(), app.store.currentTVL())

	// Custody saw the pull and the fee payout.
	pulls := app.custody.transfersTo("ledger")
	require.Len(t, pulls, 1)
	assert.Equal(t, "cust-splitter", pulls[0].From)
	assert.Equal(t, int64(10_000), pulls[0].Amount)
	fees := app.custody.transfersTo("treasury")
	require.Len(t, fees, 1)
	assert.Equal(t, int64(25), fees[0].Amount)
}

func TestBillingsOverflowOnDeposit(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "overflow", "cust-overflow")

	app.setSplitConfig(t, token, map[string]int64{"billings": 10000})

	dep := app.deposit(t, token, 1_100_000)
	require.Equal(t, int64(2_750), dep.Fee)
	require.Equal(t, int64(1_097_250), dep.Net)
	assert.Equal(t, int64(97_250), dep.Overflowed)

	bal := app.balances(t, token)
	byBucket := make(map[string]int64)
	for _, b := range bal.Balances {
		byBucket[b.Bucket] = b.Balance
	}
	assert.Equal(t, int64(1_000_000), byBucket["billings"])
	assert.Equal(t, int64(97_250), byBucket["growth"])
	assert.Equal(t, dep.Net, bal.Total)
	assert.Equal(t, app.store.sumBalances(), app.store.currentTVL())

	// The automatic spill shows up on the event stream as an internal
	// transfer from billings to growth.
	spills := app.events.byType(domain.EventBucketTransfer)
	require.Len(t, spills, 1)
	assert.Equal(t, int64(97_250), spills[0].Data["amount"])
}

func TestWithdrawalsAndDailyLimit(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "withdrawer", "cust-withdrawer")

	app.setSplitConfig(t, token, map[string]int64{"spendable": 8000, "growth": 2000})
	app.deposit(t, token, 100_000)
	// net 99,750: spendable 79,800, growth 19,950

	// Growth never leaves directly.
	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/withdrawals", token, map[string]any{
		"bucket": "growth", "amount": 1_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_002", env.ErrorCode)

	status, env = app.do(t, http.MethodPut, "/api/v1/ledger/withdraw-limit", token, map[string]any{"daily_limit": 5_000})
	require.Equal(t, http.StatusNoContent, status, env.Message)

	status, _ = app.do(t, http.MethodPost, "/api/v1/ledger/withdrawals", token, map[string]any{
		"bucket": "spendable", "amount": 5_000,
	})
	require.Equal(t, http.StatusNoContent, status)

	// The day's allowance is spent.
	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/withdrawals", token, map[string]any{
		"bucket": "spendable", "amount": 1,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_003", env.ErrorCode)

	// The counter is keyed by calendar day, so the next day starts fresh.
	app.clock.Advance(24 * time.Hour)
	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/withdrawals", token, map[string]any{
		"bucket": "spendable", "amount": 5_000,
	})
	require.Equal(t, http.StatusNoContent, status, env.Message)

	bal := app.balances(t, token)
	assert.Equal(t, int64(99_750-10_000), bal.Total)
	assert.Equal(t, app.store.sumBalances(), app.store.currentTVL())
}

func TestEmergencyWithdrawalFlow(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "urgent", "cust-urgent")

	app.setSplitConfig(t, token, map[string]int64{"instant": 10000})
	app.deposit(t, token, 50_000) // net 49,875 into instant

	// Execute without a pending request.
	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/emergency/execute", token, map[string]any{
		"bucket": "instant", "amount": 10_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_005", env.ErrorCode)

	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/emergency", token, nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var req dto.EmergencyRequestResponse
	decodeInto(t, env, &req)
	assert.Equal(t, "2025-03-10T12:00:00Z", req.RequestedAt)
	assert.Equal(t, "2025-03-11T12:00:00Z", req.ExecutableAt)

	// Too early.
	app.clock.Advance(23 * time.Hour)
	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/emergency/execute", token, map[string]any{
		"bucket": "instant", "amount": 10_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_006", env.ErrorCode)

	app.clock.Advance(2 * time.Hour)
	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/emergency/execute", token, map[string]any{
		"bucket": "instant", "amount": 10_000,
	})
	require.Equal(t, http.StatusNoContent, status, env.Message)

	bal := app.balances(t, token)
	assert.Equal(t, int64(39_875), bal.Total)

	// The request was consumed; a second execute needs a new request.
	status, env = app.do(t, http.MethodPost, "/api/v1/ledger/emergency/execute", token, map[string]any{
		"bucket": "instant", "amount": 1_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_005", env.ErrorCode)
}

func TestGoalLifecycle(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "saver", "cust-saver")

	app.setSplitConfig(t, token, map[string]int64{"savings": 10000})
	app.deposit(t, token, 20_000) // net 19,950 into savings

	targetDate := app.clock.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339)
	status, env := app.do(t, http.MethodPost, "/api/v1/goals", token, map[string]any{
		"target_amount": 10_000,
		"target_date":   targetDate,
		"description":   "new laptop",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var goal dto.GoalResponse
	decodeInto(t, env, &goal)
	require.Equal(t, int64(1), goal.GoalID)
	assert.True(t, goal.Locked)
	assert.False(t, goal.Completed)

	// Partial contribution.
	status, env = app.do(t, http.MethodPost, "/api/v1/goals/1/contributions", token, map[string]any{"amount": 4_000})
	require.Equal(t, http.StatusOK, status, env.Message)
	decodeInto(t, env, &goal)
	assert.Equal(t, int64(4_000), goal.CurrentAmount)
	assert.False(t, goal.Completed)

	// Crossing the target completes the goal and fixes the bonus rate.
	status, env = app.do(t, http.MethodPost, "/api/v1/goals/1/contributions", token, map[string]any{"amount": 6_500})
	require.Equal(t, http.StatusOK, status, env.Message)
	decodeInto(t, env, &goal)
	assert.Equal(t, int64(10_500), goal.CurrentAmount)
	assert.True(t, goal.Completed)
	assert.Equal(t, int64(500), goal.BonusAPYBps)

	// Completed goals reject further contributions.
	status, env = app.do(t, http.MethodPost, "/api/v1/goals/1/contributions", token, map[string]any{"amount": 100})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_004", env.ErrorCode)

	// Goal funds left the savings bucket but stayed in the ledger, so
	// buckets plus locked goal value still add up to TVL.
	bal := app.balances(t, token)
	assert.Equal(t, int64(19_950-10_500), bal.Total)
	assert.Equal(t, app.store.sumBalances()+goal.CurrentAmount, app.store.currentTVL())

	completions := app.events.byType(domain.EventGoalCompleted)
	require.Len(t, completions, 1)
}

func TestPayrollLifecycle(t *testing.T) {
	app := newTestApp(t)
	employerID, token := app.register(t, "employer", "cust-employer")

	// Paying yourself is rejected.
	status, env := app.do(t, http.MethodPost, "/api/v1/payroll/employees", token, map[string]any{
		"recipient": "cust-employer", "salary": 300, "payment_day": 15,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_009", env.ErrorCode)

	addEmployee := func(recipient string, salary int64) dto.EmployeeResponse {
		status, env := app.do(t, http.MethodPost, "/api/v1/payroll/employees", token, map[string]any{
			"recipient": recipient, "salary": salary, "payment_day": 15, "name": recipient,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
		var emp dto.EmployeeResponse
		decodeInto(t, env, &emp)
		return emp
	}

	addEmployee("cust-alice", 300)
	addEmployee("cust-bob", 300)

	// Same active recipient twice is rejected.
	status, env = app.do(t, http.MethodPost, "/api/v1/payroll/employees", token, map[string]any{
		"recipient": "cust-alice", "salary": 400, "payment_day": 10,
	})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "POL_008", env.ErrorCode)

	// Schedule: the committed total snapshots salaries plus fee.
	date := app.clock.Now().Add(time.Hour).Format(time.RFC3339)
	status, env = app.do(t, http.MethodPost, "/api/v1/payroll/batches", token, map[string]any{"date": date})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var batch dto.BatchResponse
	decodeInto(t, env, &batch)
	require.Equal(t, int64(1), batch.BatchID)
	assert.Equal(t, int64(601), batch.TotalAmount)
	assert.Equal(t, 2, batch.EmployeeCount)

	processPath := fmt.Sprintf("/api/v1/payroll/employers/%s/batches/1/process", employerID)

	// Only operators reach the processing endpoint.
	status, env = app.do(t, http.MethodPost, processPath, token, nil)
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "POL_014", env.ErrorCode)

	app.store.setOperator(employerID, true)
	opToken := app.login(t, "employer")

	// Not due yet.
	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POL_013", env.ErrorCode)

	app.clock.Advance(2 * time.Hour)

	// Custody must hold at least the committed total.
	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "BAL_002", env.ErrorCode)

	app.custody.balance = 10_000

	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	var result dto.ProcessResultResponse
	decodeInto(t, env, &result)
	assert.Equal(t, 2, result.Paid)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int64(600), result.PaidTotal)
	assert.Equal(t, int64(1), result.Fee)
	assert.True(t, result.Batch.Processed)
	assert.False(t, result.Batch.Failed)

	require.Len(t, app.custody.transfersTo("cust-alice"), 1)
	require.Len(t, app.custody.transfersTo("cust-bob"), 1)
	require.Len(t, app.custody.transfersTo("treasury"), 1)

	// Re-processing a finished batch is rejected.
	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "POL_012", env.ErrorCode)

	// Running totals were bumped for both recipients.
	status, env = app.do(t, http.MethodGet, "/api/v1/payroll/employees", opToken, nil)
	require.Equal(t, http.StatusOK, status)
	var emps []dto.EmployeeResponse
	decodeInto(t, env, &emps)
	require.Len(t, emps, 2)
	for _, e := range emps {
		assert.Equal(t, int64(300), e.TotalPaid)
		assert.NotEmpty(t, e.LastPaidAt)
	}
}

func TestPayrollPartialFailureIsolation(t *testing.T) {
	app := newTestApp(t)
	employerID, _ := app.register(t, "bigcorp", "cust-bigcorp")
	app.store.setOperator(employerID, true)
	opToken := app.login(t, "bigcorp")

	recipients := []string{"cust-e1", "cust-e2", "cust-e3"}
	for _, r := range recipients {
		status, env := app.do(t, http.MethodPost, "/api/v1/payroll/employees", opToken, map[string]any{
			"recipient": r, "salary": 500, "payment_day": 1,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	date := app.clock.Now().Add(time.Hour).Format(time.RFC3339)
	status, env := app.do(t, http.MethodPost, "/api/v1/payroll/batches", opToken, map[string]any{"date": date})
	require.Equal(t, http.StatusCreated, status, env.Message)

	app.clock.Advance(2 * time.Hour)
	app.custody.balance = 10_000
	app.custody.failRecipient("cust-e2")

	processPath := fmt.Sprintf("/api/v1/payroll/employers/%s/batches/1/process", employerID)
	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)

	var result dto.ProcessResultResponse
	decodeInto(t, env, &result)
	assert.Equal(t, 2, result.Paid)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, int64(1_000), result.PaidTotal)
	// No fee on a partially failed run.
	assert.Equal(t, int64(0), result.Fee)
	assert.True(t, result.Batch.Processed)
	assert.True(t, result.Batch.Failed)
	assert.Contains(t, result.Batch.FailureReason, "employee 2")

	// One attempt record per employee, success and failure alike.
	status, env = app.do(t, http.MethodGet, "/api/v1/payroll/batches/1/records", opToken, nil)
	require.Equal(t, http.StatusOK, status)
	var records []dto.PaymentRecordResponse
	decodeInto(t, env, &records)
	require.Len(t, records, 3)
	assert.True(t, records[0].Success)
	assert.False(t, records[1].Success)
	assert.NotEmpty(t, records[1].FailReason)
	assert.True(t, records[2].Success)

	require.Len(t, app.custody.transfersTo("cust-e1"), 1)
	require.Empty(t, app.custody.transfersTo("cust-e2"))
	require.Len(t, app.custody.transfersTo("cust-e3"), 1)
	require.Empty(t, app.custody.transfersTo("treasury"))
}

func TestPayrollSnapshotSurvivesEmployeeRemoval(t *testing.T) {
	app := newTestApp(t)
	employerID, _ := app.register(t, "shrinkco", "cust-shrinkco")
	app.store.setOperator(employerID, true)
	opToken := app.login(t, "shrinkco")

	salaries := map[string]int64{"cust-r1": 100, "cust-r2": 200, "cust-r3": 300}
	for _, r := range []string{"cust-r1", "cust-r2", "cust-r3"} {
		status, env := app.do(t, http.MethodPost, "/api/v1/payroll/employees", opToken, map[string]any{
			"recipient": r, "salary": salaries[r], "payment_day": 1,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	date := app.clock.Now().Add(time.Hour).Format(time.RFC3339)
	status, env := app.do(t, http.MethodPost, "/api/v1/payroll/batches", opToken, map[string]any{"date": date})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var batch dto.BatchResponse
	decodeInto(t, env, &batch)
	assert.Equal(t, int64(601), batch.TotalAmount)
	assert.Equal(t, 3, batch.EmployeeCount)

	// Removing a recipient after scheduling shrinks the payee set but
	// never the committed total.
	status, _ = app.do(t, http.MethodDelete, "/api/v1/payroll/employees/2", opToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	app.clock.Advance(2 * time.Hour)
	app.custody.balance = 10_000

	processPath := fmt.Sprintf("/api/v1/payroll/employers/%s/batches/1/process", employerID)
	status, env = app.do(t, http.MethodPost, processPath, opToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)

	var result dto.ProcessResultResponse
	decodeInto(t, env, &result)
	assert.Equal(t, 2, result.Paid)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int64(400), result.PaidTotal)
	assert.Equal(t, int64(1), result.Fee)
	assert.True(t, result.Batch.Processed)
	assert.False(t, result.Batch.Failed)
	assert.Equal(t, int64(601), result.Batch.TotalAmount)

	// Only the two still-active recipients were paid.
	require.Len(t, app.custody.transfersTo("cust-r1"), 1)
	require.Empty(t, app.custody.transfersTo("cust-r2"))
	require.Len(t, app.custody.transfersTo("cust-r3"), 1)

	status, env = app.do(t, http.MethodGet, "/api/v1/payroll/batches/1/records", opToken, nil)
	require.Equal(t, http.StatusOK, status)
	var records []dto.PaymentRecordResponse
	decodeInto(t, env, &records)
	require.Len(t, records, 2)

	// The batch read back by id still carries the committed total.
	status, env = app.do(t, http.MethodGet, "/api/v1/payroll/batches/1", opToken, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	var fetched dto.BatchResponse
	decodeInto(t, env, &fetched)
	assert.Equal(t, int64(601), fetched.TotalAmount)
	assert.True(t, fetched.Processed)

	status, env = app.do(t, http.MethodGet, "/api/v1/payroll/batches/42", opToken, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "VAL_007", env.ErrorCode)
}

func TestFailedDepositLeavesNoTrace(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "unlucky", "cust-unlucky")
	app.setSplitConfig(t, token, map[string]int64{"spendable": 10000})

	app.custody.failRecipient("cust-unlucky")

	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/deposits", token, map[string]any{"amount": 5_000})
	require.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "XFR_001", env.ErrorCode)

	// The staged balance and TVL writes were discarded with the
	// transaction.
	bal := app.balances(t, token)
	assert.Equal(t, int64(0), bal.Total)
	assert.Equal(t, int64(0), app.store.currentTVL())
	assert.Empty(t, app.events.byType(domain.EventFundsSplit))
}

func TestBucketTransferWithBillingsCap(t *testing.T) {
	app := newTestApp(t)
	_, token := app.register(t, "shuffler", "cust-shuffler")

	app.setSplitConfig(t, token, map[string]int64{"billings": 5000, "spendable": 5000})
	app.deposit(t, token, 2_000_000)
	// net 1,995,000 split evenly: billings 997,500 (just under the
	// 1,000,000 cap), spendable 997,500.

	// Push spendable funds into billings past the cap; the excess spills
	// to growth.
	status, env := app.do(t, http.MethodPost, "/api/v1/ledger/transfers", token, map[string]any{
		"from": "spendable", "to": "billings", "amount": 50_000,
	})
	require.Equal(t, http.StatusNoContent, status, env.Message)

	bal := app.balances(t, token)
	byBucket := make(map[string]int64)
	for _, b := range bal.Balances {
		byBucket[b.Bucket] = b.Balance
	}
	assert.Equal(t, int64(1_000_000), byBucket["billings"])
	assert.Equal(t, int64(47_500), byBucket["growth"])
	assert.Equal(t, int64(947_500), byBucket["spendable"])
	assert.Equal(t, app.store.sumBalances(), app.store.currentTVL())
}
