package platform_test

import (
	"testing"

	"campaign-sync/internal/adapter/platform"
	"campaign-sync/internal/adapter/platform/mock"
	"campaign-sync/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryLookup ensures adapters are found by platform name regardless of case.
func TestRegistryLookup(t *testing.T) {
	reddit := mock.New(mock.Config{Platform: domain.PlatformReddit})
	r := platform.NewRegistry(reddit)

	a, ok := r.Lookup("Reddit ")
	require.True(t, ok)
	assert.Same(t, reddit, a)

	_, ok = r.Lookup("tiktok")
	assert.False(t, ok)

	google := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	r.Register("GOOGLE", google)
	assert.Equal(t, []domain.Platform{domain.PlatformGoogle, domain.PlatformReddit}, r.Platforms())
}
