package credentials

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvTokenProvider_ReadsOnEveryCall(t *testing.T) {
	provider := NewEnvTokenProvider()

	t.Setenv(constvars.ClinicorpTokenEnvKey, "")
	assert.Empty(t, provider.ClinicorpToken())

	t.Setenv(constvars.ClinicorpTokenEnvKey, "first-token")
	assert.Equal(t, "first-token", provider.ClinicorpToken())

	t.Setenv(constvars.ClinicorpTokenEnvKey, "rotated-token")
	assert.Equal(t, "rotated-token", provider.ClinicorpToken())
}

func TestTokenFunc(t *testing.T) {
	provider := TokenFunc(func() string { return "static" })
	assert.Equal(t, "static", provider.ClinicorpToken())
}
