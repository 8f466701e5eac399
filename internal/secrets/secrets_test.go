package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openconvo/httptools-mcp/internal/secrets"
	secrets_mocks "github.com/openconvo/httptools-mcp/internal/secrets/mocks"
	"go.uber.org/mock/gomock"
)

func TestLazyResolvesOncePerKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := secrets_mocks.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), "payments.api_key", "tenant-a").
		Return("sk-live-123", nil).
		Times(1)

	lazy := secrets.NewLazy(context.Background(), resolver, "tenant-a")

	if got := lazy.Get("payments.api_key"); got != "sk-live-123" {
		t.Errorf("Get() = %q, want sk-live-123", got)
	}
	// Second access must hit the memo, not the resolver.
	if got := lazy.Get("payments.api_key"); got != "sk-live-123" {
		t.Errorf("memoized Get() = %q, want sk-live-123", got)
	}
}

func TestLazyResolutionFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := secrets_mocks.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), "broken", "").
		Return("", errors.New("vault unreachable")).
		Times(1)

	lazy := secrets.NewLazy(context.Background(), resolver, "")

	if got := lazy.Get("broken"); got != "" {
		t.Errorf("Get() after failure = %q, want empty string", got)
	}
	// The failure is memoized too; no retry storm inside a single call.
	if got := lazy.Get("broken"); got != "" {
		t.Errorf("memoized Get() after failure = %q, want empty string", got)
	}
}

func TestLazyLookupJoinsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := secrets_mocks.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), "crm.oauth.token", "t1").
		Return("tok", nil)

	lazy := secrets.NewLazy(context.Background(), resolver, "t1")

	v, ok := lazy.Lookup([]string{"crm", "oauth", "token"})
	if !ok || v != "tok" {
		t.Errorf("Lookup() = %v, %v; want tok, true", v, ok)
	}

	if _, ok := lazy.Lookup(nil); ok {
		t.Error("bare secrets root should not resolve")
	}
}

func TestEnvResolver(t *testing.T) {
	t.Setenv("HTTPTOOLS_SECRET_TENANT_A_PAYMENTS_API_KEY", "env-secret")

	var r secrets.EnvResolver
	got, err := r.Resolve(context.Background(), "payments.api-key", "tenant-a")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "env-secret" {
		t.Errorf("Resolve() = %q, want env-secret", got)
	}

	unknown, err := r.Resolve(context.Background(), "nope", "tenant-a")
	if err != nil || unknown != "" {
		t.Errorf("unknown path = %q, %v; want empty, nil", unknown, err)
	}
}
