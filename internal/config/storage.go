package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string `env:"DSN" envDefault:"praxis.sqlite"`
	Cache Cache  `envPrefix:"CACHE_"`
}

type Cache struct {
	Users UsersCache `envPrefix:"USERS_"`
}

type UsersCache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"256"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"1m"`
}
