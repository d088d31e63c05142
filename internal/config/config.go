package config

import (
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// App is the process configuration, read from the environment (a .env file is
// loaded first by main).
type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	// memory (default, seeded demo dataset) or mysql.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	MySQLDSN    string `envconfig:"MYSQL_DSN"`
	SeedDemo    bool   `envconfig:"SEED_DEMO_DATA" default:"true"`

	// log (default, immediate local delivery) or fcm.
	NotifyDriver       string `envconfig:"NOTIFY_DRIVER" default:"log"`
	FCMCredentialsFile string `envconfig:"FCM_CREDENTIALS_FILE"`

	// Session blob storage; a passphrase switches to the sealed store.
	SessionDir string `envconfig:"SESSION_DIR" default:".session"`
	SessionKey string `envconfig:"SESSION_KEY"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// ConnectDB opens the MySQL connection for the gorm-backed store.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
