package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore backs every repository port with plain maps so the full API
// stack runs without PostgreSQL. Writes made inside a transaction are
// staged on the memTx and only land in the store on Commit, mirroring
// what the real transactor guarantees.
type memStore struct {
	mu sync.Mutex

	accounts   map[uuid.UUID]domain.Account
	byUsername map[string]uuid.UUID
	splits     map[uuid.UUID]domain.SplitConfig
	balances   map[uuid.UUID]map[domain.Bucket]int64
	tvl        int64

	limits      map[uuid.UUID]int64
	withdrawn   map[string]int64
	emergencies map[uuid.UUID]domain.EmergencyRequest

	goals   map[uuid.UUID][]domain.SavingsGoal
	goalSeq map[uuid.UUID]int64

	employees map[uuid.UUID][]domain.Employee
	empSeq    map[uuid.UUID]int64
	batches   map[uuid.UUID][]domain.PayrollBatch
	batchSeq  map[uuid.UUID]int64
	records   map[string][]domain.PaymentRecord
}

func newMemStore() *memStore {
	return &memStore{
		accounts:    make(map[uuid.UUID]domain.Account),
		byUsername:  make(map[string]uuid.UUID),
		splits:      make(map[uuid.UUID]domain.SplitConfig),
		balances:    make(map[uuid.UUID]map[domain.Bucket]int64),
		limits:      make(map[uuid.UUID]int64),
		withdrawn:   make(map[string]int64),
		emergencies: make(map[uuid.UUID]domain.EmergencyRequest),
		goals:       make(map[uuid.UUID][]domain.SavingsGoal),
		goalSeq:     make(map[uuid.UUID]int64),
		employees:   make(map[uuid.UUID][]domain.Employee),
		empSeq:      make(map[uuid.UUID]int64),
		batches:     make(map[uuid.UUID][]domain.PayrollBatch),
		batchSeq:    make(map[uuid.UUID]int64),
		records:     make(map[string][]domain.PaymentRecord),
	}
}

func withdrawnKey(accountID uuid.UUID, day int64) string {
	return fmt.Sprintf("%s:%d", accountID, day)
}

func recordKey(employerID uuid.UUID, batchID int64) string {
	return fmt.Sprintf("%s:%d", employerID, batchID)
}

// setBalanceLocked writes an absolute bucket balance. Caller holds mu.
func (s *memStore) setBalanceLocked(accountID uuid.UUID, b domain.Bucket, balance int64) {
	m, ok := s.balances[accountID]
	if !ok {
		m = make(map[domain.Bucket]int64)
		s.balances[accountID] = m
	}
	m[b] = balance
}

// setOperator flips the operator flag directly, standing in for an
// out-of-band provisioning step.
func (s *memStore) setOperator(accountID uuid.UUID, operator bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return
	}
	acc.IsOperator = operator
	s.accounts[accountID] = acc
}

// sumBalances returns the committed total across all accounts' buckets.
func (s *memStore) sumBalances() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := int64(0)
	for _, m := range s.balances {
		for _, v := range m {
			total += v
		}
	}
	return total
}

func (s *memStore) currentTVL() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tvl
}

// memTx stages writes and applies them atomically on Commit. Embedding
// pgx.Tx satisfies the interface; only Commit and Rollback are called
// by the services.
type memTx struct {
	pgx.Tx
	store *memStore

	mu      sync.Mutex
	staged  []func(s *memStore)
	tvlRead int64
	done    bool
}

func (t *memTx) stage(fn func(s *memStore)) {
	t.mu.Lock()
	t.staged = append(t.staged, fn)
	t.mu.Unlock()
}

func (t *memTx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, fn := range t.staged {
		fn(t.store)
	}
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	t.staged = nil
	return nil
}

func asMemTx(tx pgx.Tx) *memTx {
	return tx.(*memTx)
}

// memTransactor implements ports.DBTransactor.
type memTransactor struct{ store *memStore }

func (m *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{store: m.store}, nil
}

// --- account repository ---

type memAccounts struct{ store *memStore }

func (r *memAccounts) Create(ctx context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.accounts[account.ID] = *account
	r.store.byUsername[account.Username] = account.ID
	return nil
}

func (r *memAccounts) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	acc, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	out := acc
	return &out, nil
}

func (r *memAccounts) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id, ok := r.store.byUsername[username]
	if !ok {
		return nil, nil
	}
	acc := r.store.accounts[id]
	return &acc, nil
}

// --- split config repository ---

type memSplits struct{ store *memStore }

func (r *memSplits) Upsert(ctx context.Context, cfg *domain.SplitConfig) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.splits[cfg.AccountID] = *cfg
	return nil
}

func (r *memSplits) Get(ctx context.Context, accountID uuid.UUID) (*domain.SplitConfig, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cfg, ok := r.store.splits[accountID]
	if !ok {
		return nil, nil
	}
	out := cfg
	return &out, nil
}

// --- bucket repository ---

type memBuckets struct{ store *memStore }

func (r *memBuckets) GetBalancesForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (map[domain.Bucket]*domain.BucketBalance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make(map[domain.Bucket]*domain.BucketBalance)
	for b, v := range r.store.balances[accountID] {
		out[b] = &domain.BucketBalance{AccountID: accountID, Bucket: b, Balance: v}
	}
	return out, nil
}

func (r *memBuckets) UpsertBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, bucket domain.Bucket, balance int64) error {
	asMemTx(tx).stage(func(s *memStore) {
		s.setBalanceLocked(accountID, bucket, balance)
	})
	return nil
}

func (r *memBuckets) ListBalances(ctx context.Context, accountID uuid.UUID) ([]domain.BucketBalance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.BucketBalance
	for _, b := range domain.Buckets {
		if v, ok := r.store.balances[accountID][b]; ok {
			out = append(out, domain.BucketBalance{AccountID: accountID, Bucket: b, Balance: v})
		}
	}
	return out, nil
}

// --- ledger meta repository ---

type memMeta struct{ store *memStore }

func (r *memMeta) GetTVLForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t := asMemTx(tx)
	t.mu.Lock()
	t.tvlRead = r.store.tvl
	t.mu.Unlock()
	return r.store.tvl, nil
}

func (r *memMeta) SetTVL(ctx context.Context, tx pgx.Tx, value int64) error {
	t := asMemTx(tx)
	t.mu.Lock()
	delta := value - t.tvlRead
	t.mu.Unlock()
	t.stage(func(s *memStore) {
		s.tvl += delta
	})
	return nil
}

func (r *memMeta) GetTVL(ctx context.Context) (int64, error) {
	return r.store.currentTVL(), nil
}

// --- guard repository ---

type memGuard struct{ store *memStore }

func (r *memGuard) SetDailyLimit(ctx context.Context, accountID uuid.UUID, limit int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.limits[accountID] = limit
	return nil
}

func (r *memGuard) GetDailyLimit(ctx context.Context, accountID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.limits[accountID], nil
}

func (r *memGuard) GetDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.withdrawn[withdrawnKey(accountID, day)], nil
}

func (r *memGuard) AddDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64, amount int64) error {
	asMemTx(tx).stage(func(s *memStore) {
		s.withdrawn[withdrawnKey(accountID, day)] += amount
	})
	return nil
}

func (r *memGuard) UpsertEmergencyRequest(ctx context.Context, accountID uuid.UUID, requestedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.emergencies[accountID] = domain.EmergencyRequest{AccountID: accountID, RequestedAt: requestedAt}
	return nil
}

func (r *memGuard) GetEmergencyRequest(ctx context.Context, accountID uuid.UUID) (*domain.EmergencyRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.emergencies[accountID]
	if !ok {
		return nil, nil
	}
	out := req
	return &out, nil
}

func (r *memGuard) ClearEmergencyRequest(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) error {
	asMemTx(tx).stage(func(s *memStore) {
		delete(s.emergencies, accountID)
	})
	return nil
}

// --- goal repository ---

type memGoals struct{ store *memStore }

func (r *memGoals) Create(ctx context.Context, tx pgx.Tx, goal *domain.SavingsGoal) (int64, error) {
	r.store.mu.Lock()
	r.store.goalSeq[goal.AccountID]++
	id := r.store.goalSeq[goal.AccountID]
	r.store.mu.Unlock()

	stored := *goal
	stored.GoalID = id
	asMemTx(tx).stage(func(s *memStore) {
		s.goals[stored.AccountID] = append(s.goals[stored.AccountID], stored)
	})
	return id, nil
}

func (r *memGoals) GetForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, goalID int64) (*domain.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, g := range r.store.goals[accountID] {
		if g.GoalID == goalID {
			out := g
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memGoals) Update(ctx context.Context, tx pgx.Tx, goal *domain.SavingsGoal) error {
	updated := *goal
	asMemTx(tx).stage(func(s *memStore) {
		list := s.goals[updated.AccountID]
		for i := range list {
			if list[i].GoalID == updated.GoalID {
				list[i] = updated
				return
			}
		}
	})
	return nil
}

func (r *memGoals) List(ctx context.Context, accountID uuid.UUID) ([]domain.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := append([]domain.SavingsGoal(nil), r.store.goals[accountID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].GoalID < out[j].GoalID })
	return out, nil
}

// --- payroll repository ---

type memPayroll struct{ store *memStore }

func (r *memPayroll) CreateEmployee(ctx context.Context, tx pgx.Tx, emp *domain.Employee) (int64, error) {
	r.store.mu.Lock()
	r.store.empSeq[emp.EmployerID]++
	id := r.store.empSeq[emp.EmployerID]
	r.store.mu.Unlock()

	stored := *emp
	stored.EmployeeID = id
	asMemTx(tx).stage(func(s *memStore) {
		s.employees[stored.EmployerID] = append(s.employees[stored.EmployerID], stored)
	})
	return id, nil
}

func (r *memPayroll) GetEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) (*domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees[employerID] {
		if e.EmployeeID == employeeID {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPayroll) GetActiveByRecipient(ctx context.Context, employerID uuid.UUID, recipient string) (*domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees[employerID] {
		if e.Active && e.Recipient == recipient {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPayroll) ListActiveEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Employee
	for _, e := range r.store.employees[employerID] {
		if e.Active {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *memPayroll) ListEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := append([]domain.Employee(nil), r.store.employees[employerID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *memPayroll) CountActiveEmployees(ctx context.Context, employerID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, e := range r.store.employees[employerID] {
		if e.Active {
			count++
		}
	}
	return count, nil
}

func (r *memPayroll) UpdateEmployee(ctx context.Context, emp *domain.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := r.store.employees[emp.EmployerID]
	for i := range list {
		if list[i].EmployeeID == emp.EmployeeID {
			list[i] = *emp
			return nil
		}
	}
	return fmt.Errorf("employee %d not found", emp.EmployeeID)
}

func (r *memPayroll) DeactivateEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := r.store.employees[employerID]
	for i := range list {
		if list[i].EmployeeID == employeeID {
			list[i].Active = false
			return nil
		}
	}
	return fmt.Errorf("employee %d not found", employeeID)
}

func (r *memPayroll) RecordPayment(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, employeeID int64, amount int64, paidAt time.Time) error {
	asMemTx(tx).stage(func(s *memStore) {
		list := s.employees[employerID]
		for i := range list {
			if list[i].EmployeeID == employeeID {
				list[i].TotalPaid += amount
				at := paidAt
				list[i].LastPaidAt = &at
				return
			}
		}
	})
	return nil
}

func (r *memPayroll) CreateBatch(ctx context.Context, tx pgx.Tx, batch *domain.PayrollBatch) (int64, error) {
	r.store.mu.Lock()
	r.store.batchSeq[batch.EmployerID]++
	id := r.store.batchSeq[batch.EmployerID]
	r.store.mu.Unlock()

	stored := *batch
	stored.BatchID = id
	asMemTx(tx).stage(func(s *memStore) {
		s.batches[stored.EmployerID] = append(s.batches[stored.EmployerID], stored)
	})
	return id, nil
}

func (r *memPayroll) GetBatch(ctx context.Context, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.batches[employerID] {
		if b.BatchID == batchID {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPayroll) GetBatchForUpdate(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error) {
	return r.GetBatch(ctx, employerID, batchID)
}

func (r *memPayroll) MarkBatchProcessed(ctx context.Context, tx pgx.Tx, batch *domain.PayrollBatch) error {
	updated := *batch
	asMemTx(tx).stage(func(s *memStore) {
		list := s.batches[updated.EmployerID]
		for i := range list {
			if list[i].BatchID == updated.BatchID {
				list[i] = updated
				return
			}
		}
	})
	return nil
}

func (r *memPayroll) ListBatches(ctx context.Context, employerID uuid.UUID) ([]domain.PayrollBatch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := append([]domain.PayrollBatch(nil), r.store.batches[employerID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].BatchID > out[j].BatchID })
	return out, nil
}

func (r *memPayroll) AppendPaymentRecord(ctx context.Context, tx pgx.Tx, rec *domain.PaymentRecord) error {
	stored := *rec
	asMemTx(tx).stage(func(s *memStore) {
		key := recordKey(stored.EmployerID, stored.BatchID)
		s.records[key] = append(s.records[key], stored)
	})
	return nil
}

func (r *memPayroll) ListPaymentRecords(ctx context.Context, employerID uuid.UUID, batchID int64) ([]domain.PaymentRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.PaymentRecord(nil), r.store.records[recordKey(employerID, batchID)]...), nil
}

// --- op guard, events, clock, custody ---

// memOpGuard implements ports.OpGuard with an in-process held set.
type memOpGuard struct {
	mu   sync.Mutex
	held map[uuid.UUID]bool
}

func newMemOpGuard() *memOpGuard {
	return &memOpGuard{held: make(map[uuid.UUID]bool)}
}

func (g *memOpGuard) Acquire(ctx context.Context, accountID uuid.UUID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[accountID] {
		return false, nil
	}
	g.held[accountID] = true
	return true, nil
}

func (g *memOpGuard) Release(ctx context.Context, accountID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, accountID)
	return nil
}

// eventSink implements ports.EventPublisher by collecting events.
type eventSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (e *eventSink) Publish(ctx context.Context, event domain.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *eventSink) byType(t domain.EventType) []domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []domain.Event
	for _, ev := range e.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// fixedClock implements ports.Clock with a steerable time.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type custodyTransfer struct {
	From   string
	To     string
	Amount int64
}

// custodyStub implements ports.TokenTransferor. The balance is the
// ledger custody account's; TransferFrom pulls value in, Transfer
// pushes it out. Recipients listed in failTo reject transfers.
type custodyStub struct {
	mu        sync.Mutex
	balance   int64
	failTo    map[string]bool
	transfers []custodyTransfer
}

func newCustodyStub() *custodyStub {
	return &custodyStub{failTo: make(map[string]bool)}
}

func (c *custodyStub) Transfer(ctx context.Context, to string, amount int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failTo[to] {
		return fmt.Errorf("custody rejected transfer to %s", to)
	}
	c.balance -= amount
	c.transfers = append(c.transfers, custodyTransfer{From: "ledger", To: to, Amount: amount})
	return nil
}

func (c *custodyStub) TransferFrom(ctx context.Context, from string, amount int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failTo[from] {
		return fmt.Errorf("custody rejected transfer from %s", from)
	}
	c.balance += amount
	c.transfers = append(c.transfers, custodyTransfer{From: from, To: "ledger", Amount: amount})
	return nil
}

func (c *custodyStub) Balance(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance, nil
}

func (c *custodyStub) failRecipient(recipient string) {
	c.mu.Lock()
	c.failTo[recipient] = true
	c.mu.Unlock()
}

func (c *custodyStub) transfersTo(recipient string) []custodyTransfer {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []custodyTransfer
	for _, tr := range c.transfers {
		if tr.To == recipient {
			out = append(out, tr)
		}
	}
	return out
}
