package environment

import "strings"

// Environment is the deployment stage the application runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalises s, accepting the short forms "dev", "stage" and "prod".
// Anything else, including "", is Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsDevelopment() bool { return e == Development }

// SecureCookies reports whether cookies must carry the Secure flag.
func (e Environment) SecureCookies() bool { return e != Development }

func (e Environment) String() string { return string(e) }
