package config

import (
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config names the dataset schema and output options. Defaults match the
// classic sales_data_sample.csv layout; every field can be overridden through
// the environment or a .env file.
type Config struct {
	InputPath     string `envconfig:"INPUT_PATH" default:"data/sales_data_sample.csv"`
	DateColumn    string `envconfig:"DATE_COLUMN" default:"ORDERDATE"`
	ProductColumn string `envconfig:"PRODUCT_COLUMN" default:"PRODUCTLINE"`
	QtyColumn     string `envconfig:"QTY_COLUMN" default:"QUANTITYORDERED"`
	PriceColumn   string `envconfig:"PRICE_COLUMN" default:"PRICEEACH"`
	SalesColumn   string `envconfig:"SALES_COLUMN" default:"SALES"`
	TopN          int    `envconfig:"TOP_N" default:"10"`
	ShowTables    bool   `envconfig:"SHOW_TABLES" default:"false"`
	// ServeAddr, when set (e.g. ":8005"), serves the report and the
	// interactive charts page over HTTP after the run instead of exiting.
	ServeAddr string `envconfig:"SERVE_ADDR" default:""`
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance.
func GetConfig() *Config {
	once.Do(func() {
		// .env is optional, it only carries overrides
		_ = godotenv.Load()

		config = &Config{}
		if err := envconfig.Process("", config); err != nil {
			log.Fatal("cannot parse environment config: ", err)
		}
	})
	return config
}
