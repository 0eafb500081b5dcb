package webserver

import "time"

type Config struct {
	// DbPath is the location of the SQLite file holding addresses and
	// invitation codes.
	DbPath string `env:"DB_PATH" env-default:"adressbuch.db"`
	Port   string `env:"PORT" env-default:"3000"`
	// FQDN is the host under which the app is reachable, used to compose
	// shareable invitation links.
	FQDN      string `env:"FQDN" env-default:"localhost:3000"`
	JwtSecret string `env:"JWT_SECRET" env-required:"true"`
	// SessionTimeout bounds how long a session cookie is trusted without
	// checking the invitation code against the store again.
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	// BootstrapCode, if set, is seeded as the first invitation code when
	// the invitations table is empty.
	BootstrapCode string `env:"BOOTSTRAP_CODE"`
	NominatimURL  string `env:"NOMINATIM_URL" env-default:"https://nominatim.openstreetmap.org"`
}

func (c Config) Secret() []byte {
	return []byte(c.JwtSecret)
}
