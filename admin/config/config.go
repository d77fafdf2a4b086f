package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-exchange-admin/pkg/circuit_breaker"
	"github.com/Astemirdum/book-exchange-admin/pkg/kafka"
	"github.com/Astemirdum/book-exchange-admin/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ADMIN_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"ADMIN_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// BookAPI is the remote book-exchange API.
type BookAPI struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"https://book-link-api.vercel.app/api"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"1m"`
}

type Listing struct {
	PageSize   int    `envconfig:"LISTING_PAGE_SIZE" default:"10"`
	Locale     string `envconfig:"LISTING_LOCALE" default:"en-US"`
	TimeZone   string `envconfig:"LISTING_TIMEZONE" default:"UTC"`
	ShowErrors bool   `envconfig:"LISTING_SHOW_ERRORS"`
	// RenderWait bounds how long the page waits for the fetch; zero waits for completion.
	RenderWait time.Duration `envconfig:"LISTING_RENDER_WAIT"`
}

type Config struct {
	Server         HTTPServer `yaml:"server"`
	API            BookAPI
	Listing        Listing
	Kafka          kafka.Config
	CircuitBreaker circuit_breaker.Config
	Log            logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
