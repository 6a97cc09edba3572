package credentials

import (
	"clinicorp-proxy-service/internal/app/contracts"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"os"
)

type envTokenProvider struct {
	key string
}

func NewEnvTokenProvider() contracts.TokenProvider {
	return &envTokenProvider{key: constvars.ClinicorpTokenEnvKey}
}

func (p *envTokenProvider) ClinicorpToken() string {
	return os.Getenv(p.key)
}

// TokenFunc adapts a plain function to contracts.TokenProvider.
type TokenFunc func() string

func (f TokenFunc) ClinicorpToken() string {
	return f()
}
