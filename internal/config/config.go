package config

import "os"

// Config carries every environment-driven setting. It is loaded once in
// main and passed down explicitly; business code never reads the
// environment.
//
// All gateway credential pairs are optional: a missing pair leaves that
// gateway unconfigured, which surfaces as 503 on initiation and a failed
// signature check on webhooks (fail closed), instead of crashing at boot.

type Config struct {
	Port          string
	JWTSecret     string
	ServiceKey    string
	AppBaseURL    string
	PublicBaseURL string

	CinetPay CinetPayConfig
	Wave     WaveConfig
	Kkiapay  KkiapayConfig
}

type CinetPayConfig struct {
	APIKey        string
	SiteID        string
	WebhookSecret string
}

type WaveConfig struct {
	APIKey        string
	WebhookSecret string
}

type KkiapayConfig struct {
	PublicKey     string
	PrivateKey    string
	WebhookSecret string
	Sandbox       bool
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:          getenvDefault("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ServiceKey:    os.Getenv("SERVICE_KEY"),
		AppBaseURL:    getenvDefault("APP_BASE_URL", "http://localhost:3000"),
		PublicBaseURL: getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		CinetPay: CinetPayConfig{
			APIKey:        os.Getenv("CINETPAY_API_KEY"),
			SiteID:        os.Getenv("CINETPAY_SITE_ID"),
			WebhookSecret: os.Getenv("CINETPAY_WEBHOOK_SECRET"),
		},
		Wave: WaveConfig{
			APIKey:        os.Getenv("WAVE_API_KEY"),
			WebhookSecret: os.Getenv("WAVE_WEBHOOK_SECRET"),
		},
		Kkiapay: KkiapayConfig{
			PublicKey:     os.Getenv("KKIAPAY_PUBLIC_KEY"),
			PrivateKey:    os.Getenv("KKIAPAY_PRIVATE_KEY"),
			WebhookSecret: os.Getenv("KKIAPAY_WEBHOOK_SECRET"),
			Sandbox:       getenvDefault("KKIAPAY_SANDBOX", "false") == "true",
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
