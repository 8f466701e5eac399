package secrets

//go:generate mockgen -destination=mocks/mock_secrets.go -package=secrets_mocks -typed github.com/openconvo/httptools-mcp/internal/secrets Resolver

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Resolver resolves one secret path for one tenant. Implementations live
// outside this subsystem (vault, KMS, per-tenant stores); the engine only
// depends on this contract. Unknown paths resolve to the empty string rather
// than an error, matching the template engine's missing-value policy.
type Resolver interface {
	Resolve(ctx context.Context, path string, tenantID string) (string, error)
}

// Lazy is the on-demand secrets accessor handed to the request-time template
// context. Each accessed key triggers exactly one Resolve call; subsequent
// accesses within the same tool call hit the memo. Resolution failures log
// and degrade to the empty string so a broken secret never fails templating.
type Lazy struct {
	ctx      context.Context
	resolver Resolver
	tenantID string

	mu    sync.Mutex
	cache map[string]string
}

// NewLazy builds a per-call accessor. The context is the tool call's context;
// it bounds any resolution work triggered by template access.
func NewLazy(ctx context.Context, resolver Resolver, tenantID string) *Lazy {
	return &Lazy{
		ctx:      ctx,
		resolver: resolver,
		tenantID: tenantID,
		cache:    make(map[string]string),
	}
}

// Get returns the secret at key, resolving and memoizing on first access.
func (l *Lazy) Get(key string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.cache[key]; ok {
		return v
	}

	value := ""
	if l.resolver != nil {
		v, err := l.resolver.Resolve(l.ctx, key, l.tenantID)
		if err != nil {
			slog.Warn("secret resolution failed", "path", key, "tenantId", l.tenantID, "error", err)
		} else {
			value = v
		}
	}
	l.cache[key] = value
	return value
}

// Lookup implements the template root contract: the remainder of a
// placeholder path below "secrets" becomes the dotted secret key. Bare
// "secrets" with no key resolves to nothing.
func (l *Lazy) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	return l.Get(strings.Join(path, ".")), true
}

// EnvResolver is the default standalone resolver: secrets come from
// environment variables named HTTPTOOLS_SECRET_<TENANT>_<PATH> (tenant
// segment omitted when empty), with dots and dashes folded to underscores.
type EnvResolver struct{}

func (EnvResolver) Resolve(_ context.Context, path string, tenantID string) (string, error) {
	parts := []string{"HTTPTOOLS_SECRET"}
	if tenantID != "" {
		parts = append(parts, envSegment(tenantID))
	}
	parts = append(parts, envSegment(path))
	return os.Getenv(strings.Join(parts, "_")), nil
}

func envSegment(s string) string {
	s = strings.NewReplacer(".", "_", "-", "_").Replace(s)
	return strings.ToUpper(s)
}
