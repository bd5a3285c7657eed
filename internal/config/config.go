package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	CookieName string `mapstructure:"cookie_name"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

type UploadConfig struct {
	Dir string `mapstructure:"dir"`
}

type WebConfig struct {
	Templates string `mapstructure:"templates"`
	Static    string `mapstructure:"static"`
}

type GeoConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UseTestIP bool   `mapstructure:"use_test_ip"`
	TestIP    string `mapstructure:"test_ip"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Data    DataConfig    `mapstructure:"data"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Web     WebConfig     `mapstructure:"web"`
	Geo     GeoConfig     `mapstructure:"geo"`
}

// Store file paths derived from the data directory.

func (c *Config) UsersFile() string      { return filepath.Join(c.Data.Dir, "users.json") }
func (c *Config) MessagesFile() string   { return filepath.Join(c.Data.Dir, "messages.json") }
func (c *Config) RequestLogFile() string { return filepath.Join(c.Data.Dir, "request_logs.json") }

var (
	appConfig *Config
	loadErr   error
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// A missing config file is not an error: defaults plus environment
// overrides (CHAT_SERVER_PORT=9000, CHAT_SESSION_SECRET=...) apply.
// Both the result and a load failure stick for later calls.
func Load(path string) (*Config, error) {
	once.Do(func() {
		var err error
		defer func() { loadErr = err }()
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetEnvPrefix("CHAT")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		if err = v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				err = nil
			} else {
				err = fmt.Errorf("read config: %w", err)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return appConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 12345)
	v.SetDefault("server.mode", "")
	v.SetDefault("session.secret", "secretkey")
	v.SetDefault("session.cookie_name", "chat_session")
	v.SetDefault("data.dir", "data")
	v.SetDefault("upload.dir", filepath.Join("web", "static", "profile_pics"))
	v.SetDefault("web.templates", filepath.Join("web", "templates", "*"))
	v.SetDefault("web.static", filepath.Join("web", "static"))
	v.SetDefault("geo.base_url", "http://ipinfo.io")
	v.SetDefault("geo.use_test_ip", true)
	v.SetDefault("geo.test_ip", "8.8.8.8")
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
