package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the storefront process configuration, read from the
// environment with defaults matching the local backend layout.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	AuthBaseURL     string        `mapstructure:"auth_base_url"`
	ProductBaseURL  string        `mapstructure:"product_base_url"`
	CartBaseURL     string        `mapstructure:"cart_base_url"`
	OrderBaseURL    string        `mapstructure:"order_base_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	PaymentStepDelay     time.Duration `mapstructure:"payment_step_delay"`
	PaymentSubmitDelay   time.Duration `mapstructure:"payment_submit_delay"`
	PaymentRedirectDelay time.Duration `mapstructure:"payment_redirect_delay"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("auth_base_url", "http://localhost:8000/auth")
	v.SetDefault("product_base_url", "http://localhost:8001/products")
	v.SetDefault("cart_base_url", "http://localhost:8002/api/cart")
	v.SetDefault("order_base_url", "http://localhost:8003/api/orders")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("payment_step_delay", 300*time.Millisecond)
	v.SetDefault("payment_submit_delay", 1500*time.Millisecond)
	v.SetDefault("payment_redirect_delay", 2*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
