package contracts

// TokenProvider hands out the Clinicorp credential. Implementations are
// asked on every request, so a rotated or removed token takes effect
// without a restart.
type TokenProvider interface {
	ClinicorpToken() string
}
