// Package mock provides a deterministic in-memory platform adapter. It is
// registered for platforms listed in PLATFORM_MOCKS and backs most of the
// sync and reconcile tests.
package mock

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/google/uuid"
)

// Operation names reported in Call.Op.
const (
	OpCreateCampaign = "CreateCampaign"
	OpUpdateCampaign = "UpdateCampaign"
	OpDeleteCampaign = "DeleteCampaign"
	OpPauseCampaign  = "PauseCampaign"
	OpResumeCampaign = "ResumeCampaign"
	OpCreateAdGroup  = "CreateAdGroup"
	OpUpdateAdGroup  = "UpdateAdGroup"
	OpDeleteAdGroup  = "DeleteAdGroup"
	OpPauseAdGroup   = "PauseAdGroup"
	OpResumeAdGroup  = "ResumeAdGroup"
	OpCreateAd       = "CreateAd"
	OpUpdateAd       = "UpdateAd"
	OpDeleteAd       = "DeleteAd"
	OpPauseAd        = "PauseAd"
	OpResumeAd       = "ResumeAd"
	OpCreateKeyword  = "CreateKeyword"
	OpUpdateKeyword  = "UpdateKeyword"
	OpDeleteKeyword  = "DeleteKeyword"
	OpFetchStatuses  = "FetchCampaignStatuses"
)

var idNamespace = uuid.MustParse("9d3c1f7e-52a4-4f0b-8f6e-2b8d7c0a6e11")

// Config tunes the mock adapter.
type Config struct {
	Platform domain.Platform
	// FailureRate is the probability in [0,1] that a create or update fails
	// with a retryable platform error.
	FailureRate float64
	// Seed makes the failure sequence reproducible. Zero picks a random seed.
	Seed uint64
	// Deterministic derives platform ids from local ids (uuid v5) instead of
	// generating random ones.
	Deterministic bool
	// NoKeywords makes keyword operations pass-through no-ops, like
	// platforms without keyword support.
	NoKeywords bool
	// Latency is added to every call and honours context cancellation.
	Latency time.Duration
	Logger  *slog.Logger
}

// Call is one recorded adapter invocation.
type Call struct {
	Op         string
	EntityID   string
	PlatformID string
	ParentID   string
}

type entity struct {
	localID   string
	parentID  string
	name      string
	status    string
	updatedAt time.Time
}

// Adapter is an in-memory port.PlatformAdapter and port.CampaignStatusReader.
type Adapter struct {
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	forced   map[string]*port.OperationError
	failAll  *port.OperationError
	onCall   func(Call)
	calls    []Call
	entities map[domain.EntityType]map[string]*entity
	now      func() time.Time
}

var (
	_ port.PlatformAdapter      = (*Adapter)(nil)
	_ port.CampaignStatusReader = (*Adapter)(nil)
)

// New returns a mock adapter.
func New(cfg Config) *Adapter {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		cfg:    cfg,
		logger: logger.With(slog.String("platform", string(cfg.Platform)), slog.String("adapter", "mock")),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		forced: make(map[string]*port.OperationError),
		entities: map[domain.EntityType]map[string]*entity{
			domain.EntityCampaign: {},
			domain.EntityAdGroup:  {},
			domain.EntityAd:       {},
			domain.EntityKeyword:  {},
		},
		now: time.Now,
	}
}

// Platform implements port.PlatformAdapter.
func (a *Adapter) Platform() domain.Platform { return a.cfg.Platform }

// Capabilities implements port.PlatformAdapter.
func (a *Adapter) Capabilities() port.Capabilities {
	return port.Capabilities{Keywords: !a.cfg.NoKeywords, AdGroupPause: true, AdPause: true}
}

// FailOn makes every create or update of the entity with the given local id
// fail with err.
func (a *Adapter) FailOn(entityID string, err *port.OperationError) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.forced[entityID] = err
}

// RateLimitOn makes the entity fail with a retryable RATE_LIMITED error.
func (a *Adapter) RateLimitOn(entityID string, retryAfter time.Duration) {
	a.FailOn(entityID, RateLimitError(retryAfter))
}

// FailAll makes every create or update fail with err. Nil clears it.
func (a *Adapter) FailAll(err *port.OperationError) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failAll = err
}

// OnCall installs a hook invoked synchronously for every call.
func (a *Adapter) OnCall(fn func(Call)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onCall = fn
}

// Calls returns every recorded call in order.
func (a *Adapter) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Call(nil), a.calls...)
}

// CallCount returns how many times op was invoked.
func (a *Adapter) CallCount(op string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, c := range a.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// RateLimitError is the error a rate-limited platform returns.
func RateLimitError(retryAfter time.Duration) *port.OperationError {
	return &port.OperationError{
		Code:       port.CodeRateLimited,
		Message:    "rate limit exceeded",
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

func (a *Adapter) record(c Call) {
	a.mu.Lock()
	a.calls = append(a.calls, c)
	fn := a.onCall
	a.mu.Unlock()
	if fn != nil {
		fn(c)
	}
}

func (a *Adapter) wait(ctx context.Context) error {
	if a.cfg.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.cfg.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// failure decides whether a write of entityID fails.
func (a *Adapter) failure(entityID string) *port.OperationError {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err, ok := a.forced[entityID]; ok {
		return err
	}
	if a.failAll != nil {
		return a.failAll
	}
	if a.cfg.FailureRate > 0 && a.rng.Float64() < a.cfg.FailureRate {
		return &port.OperationError{
			Code:      port.CodeServerError,
			Message:   "simulated platform failure",
			Retryable: true,
		}
	}
	return nil
}

func (a *Adapter) newID(t domain.EntityType, localID string) string {
	if a.cfg.Deterministic && localID != "" {
		return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%s/%s", a.cfg.Platform, t, localID))).String()
	}
	return uuid.NewString()
}

func (a *Adapter) write(ctx context.Context, op string, t domain.EntityType, localID, platformID, parentID, name, status string) (string, error) {
	a.record(Call{Op: op, EntityID: localID, PlatformID: platformID, ParentID: parentID})
	if err := a.wait(ctx); err != nil {
		return "", port.AsOperationError(err)
	}
	if err := a.failure(localID); err != nil {
		a.logger.Debug("mock write failed", slog.String("op", op), slog.String("entity_id", localID),
			slog.String("code", err.Code))
		return "", err
	}

	if platformID == "" {
		platformID = a.newID(t, localID)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entities[t][platformID]
	if !ok {
		e = &entity{localID: localID}
		a.entities[t][platformID] = e
	}
	if parentID != "" {
		e.parentID = parentID
	}
	e.name = name
	if status != "" {
		e.status = status
	}
	e.updatedAt = a.now()
	return platformID, nil
}

func (a *Adapter) mutate(ctx context.Context, op string, t domain.EntityType, platformID string, fn func(map[string]*entity)) error {
	a.record(Call{Op: op, PlatformID: platformID})
	if err := a.wait(ctx); err != nil {
		return port.AsOperationError(err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.entities[t][platformID]; !ok {
		return &port.OperationError{Code: port.CodeNotFound, Message: fmt.Sprintf("%s %s not found", t, platformID)}
	}
	fn(a.entities[t])
	return nil
}

func (a *Adapter) setStatus(ctx context.Context, op string, t domain.EntityType, platformID, status string) error {
	return a.mutate(ctx, op, t, platformID, func(m map[string]*entity) {
		m[platformID].status = status
		m[platformID].updatedAt = a.now()
	})
}

func (a *Adapter) remove(ctx context.Context, op string, t domain.EntityType, platformID string) error {
	return a.mutate(ctx, op, t, platformID, func(m map[string]*entity) { delete(m, platformID) })
}

// CreateCampaign implements port.CampaignOperations.
func (a *Adapter) CreateCampaign(ctx context.Context, c domain.Campaign) (string, error) {
	return a.write(ctx, OpCreateCampaign, domain.EntityCampaign, c.ID, "", "", c.Name, c.Status)
}

// UpdateCampaign implements port.CampaignOperations.
func (a *Adapter) UpdateCampaign(ctx context.Context, c domain.Campaign, platformID string) (string, error) {
	return a.write(ctx, OpUpdateCampaign, domain.EntityCampaign, c.ID, platformID, "", c.Name, c.Status)
}

// DeleteCampaign implements port.CampaignOperations.
func (a *Adapter) DeleteCampaign(ctx context.Context, platformID string) error {
	return a.remove(ctx, OpDeleteCampaign, domain.EntityCampaign, platformID)
}

// PauseCampaign implements port.CampaignOperations.
func (a *Adapter) PauseCampaign(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpPauseCampaign, domain.EntityCampaign, platformID, domain.StatusPaused)
}

// ResumeCampaign implements port.CampaignOperations.
func (a *Adapter) ResumeCampaign(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpResumeCampaign, domain.EntityCampaign, platformID, domain.StatusActive)
}

// CreateAdGroup implements port.AdGroupOperations.
func (a *Adapter) CreateAdGroup(ctx context.Context, g domain.AdGroup, platformCampaignID string) (string, error) {
	return a.write(ctx, OpCreateAdGroup, domain.EntityAdGroup, g.ID, "", platformCampaignID, g.Name, g.Status)
}

// UpdateAdGroup implements port.AdGroupOperations.
func (a *Adapter) UpdateAdGroup(ctx context.Context, g domain.AdGroup, platformID string) (string, error) {
	return a.write(ctx, OpUpdateAdGroup, domain.EntityAdGroup, g.ID, platformID, "", g.Name, g.Status)
}

// DeleteAdGroup implements port.AdGroupOperations.
func (a *Adapter) DeleteAdGroup(ctx context.Context, platformID string) error {
	return a.remove(ctx, OpDeleteAdGroup, domain.EntityAdGroup, platformID)
}

// PauseAdGroup implements port.AdGroupOperations.
func (a *Adapter) PauseAdGroup(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpPauseAdGroup, domain.EntityAdGroup, platformID, domain.StatusPaused)
}

// ResumeAdGroup implements port.AdGroupOperations.
func (a *Adapter) ResumeAdGroup(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpResumeAdGroup, domain.EntityAdGroup, platformID, domain.StatusActive)
}

// CreateAd implements port.AdOperations.
func (a *Adapter) CreateAd(ctx context.Context, ad domain.Ad, platformAdGroupID string) (string, error) {
	return a.write(ctx, OpCreateAd, domain.EntityAd, ad.ID, "", platformAdGroupID, ad.Headline, ad.Status)
}

// UpdateAd implements port.AdOperations.
func (a *Adapter) UpdateAd(ctx context.Context, ad domain.Ad, platformID string) (string, error) {
	return a.write(ctx, OpUpdateAd, domain.EntityAd, ad.ID, platformID, "", ad.Headline, ad.Status)
}

// DeleteAd implements port.AdOperations.
func (a *Adapter) DeleteAd(ctx context.Context, platformID string) error {
	return a.remove(ctx, OpDeleteAd, domain.EntityAd, platformID)
}

// PauseAd implements port.AdOperations.
func (a *Adapter) PauseAd(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpPauseAd, domain.EntityAd, platformID, domain.StatusPaused)
}

// ResumeAd implements port.AdOperations.
func (a *Adapter) ResumeAd(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, OpResumeAd, domain.EntityAd, platformID, domain.StatusActive)
}

// CreateKeyword implements port.KeywordOperations.
func (a *Adapter) CreateKeyword(ctx context.Context, k domain.Keyword, platformAdGroupID string) (string, error) {
	if a.cfg.NoKeywords {
		a.record(Call{Op: OpCreateKeyword, EntityID: k.ID, ParentID: platformAdGroupID})
		return k.ID, nil
	}
	return a.write(ctx, OpCreateKeyword, domain.EntityKeyword, k.ID, "", platformAdGroupID,
		fmt.Sprintf("%s/%s", k.Text, k.MatchType), k.Status)
}

// UpdateKeyword implements port.KeywordOperations.
func (a *Adapter) UpdateKeyword(ctx context.Context, k domain.Keyword, platformID string) (string, error) {
	if a.cfg.NoKeywords {
		a.record(Call{Op: OpUpdateKeyword, EntityID: k.ID, PlatformID: platformID})
		return platformID, nil
	}
	return a.write(ctx, OpUpdateKeyword, domain.EntityKeyword, k.ID, platformID, "",
		fmt.Sprintf("%s/%s", k.Text, k.MatchType), k.Status)
}

// DeleteKeyword implements port.KeywordOperations.
func (a *Adapter) DeleteKeyword(ctx context.Context, platformID string) error {
	if a.cfg.NoKeywords {
		a.record(Call{Op: OpDeleteKeyword, PlatformID: platformID})
		return nil
	}
	return a.remove(ctx, OpDeleteKeyword, domain.EntityKeyword, platformID)
}
