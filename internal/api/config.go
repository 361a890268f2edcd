package api

import (
	"time"

	"github.com/eventify-app/eventify/pkg/httpserver"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/redis"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the complete environment configuration of the BFF server.
type Config struct {
	AppEnv       string        `env:"APP_ENV" envDefault:"development"`                            // AppEnv is development, staging or production.
	ServiceName  string        `env:"SERVICE_NAME" envDefault:"eventify"`                          // ServiceName is attached to every log record.
	APIURL       string        `env:"EVENTIFY_API_URL" envDefault:"http://localhost:4000/graphql"` // APIURL is the GraphQL endpoint.
	APITimeout   time.Duration `env:"EVENTIFY_API_TIMEOUT" envDefault:"10s"`                       // APITimeout bounds each GraphQL attempt.
	APIRetries   int           `env:"EVENTIFY_API_RETRIES" envDefault:"2"`                         // APIRetries is the number of extra attempts for queries.
	SessionStore string        `env:"SESSION_STORE" envDefault:"memory"`                           // SessionStore is memory or redis.
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"168h"`                               // SessionTTL is the max age of the session cookie.
	FormsFile    string        `env:"FORMS_FILE"`                                                  // FormsFile optionally adds or overrides rule sets.

	TrustProxyHeaders bool          `env:"TRUST_PROXY_HEADERS" envDefault:"false"` // TrustProxyHeaders reads the client IP from proxy headers.
	AuthRateBurst     int           `env:"AUTH_RATE_BURST" envDefault:"10"`        // AuthRateBurst is the number of credential requests allowed at once per client and path.
	AuthRateInterval  time.Duration `env:"AUTH_RATE_INTERVAL" envDefault:"30s"`    // AuthRateInterval is the time to earn back one request. Zero disables limiting.

	HTTP  httpserver.Config
	Redis redis.Config
	Log   logger.Config
}
