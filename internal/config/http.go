package config

import "time"

type HTTP struct {
	BaseURL        string   `env:"BASE_URL,expand" envDefault:"/"`
	Address        string   `env:"ADDRESS,expand" envDefault:":3004"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	Session        Session  `envPrefix:"SESSION_"`
}

type Session struct {
	// Keys sign the session cookies. When empty a random key is generated at
	// startup, invalidating every session on restart.
	Keys   []string      `env:"KEYS" envSeparator:","`
	Cookie SessionCookie `envPrefix:"COOKIE_"`
}

type SessionCookie struct {
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"168h"`
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
}
