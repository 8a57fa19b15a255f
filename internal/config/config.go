package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
)

type RevenueConfig struct {
	Env          string             `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	RevenueDB    `yaml:"revenue_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Auth         `yaml:"auth"`
	Pricing      PricingConfig      `yaml:"pricing"`
	Distribution DistributionConfig `yaml:"distribution"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RevenueDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type PricingConfig struct {
	Tiers                []TierConfig       `yaml:"tiers"`
	TokenTypeMultipliers map[string]float64 `yaml:"token_type_multipliers"`
	Services             []ServiceConfig    `yaml:"services"`
	Discounts            DiscountsConfig    `yaml:"discounts"`
}

type TierConfig struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	BaseFee  float64  `yaml:"base_fee"`
	Currency string   `yaml:"currency"`
	Enabled  bool     `yaml:"enabled"`
	Features []string `yaml:"features"`
}

type ServiceConfig struct {
	ID       string  `yaml:"id"`
	Label    string  `yaml:"label"`
	Price    float64 `yaml:"price"`
	Currency string  `yaml:"currency"`
}

type DiscountsConfig struct {
	Bulk                  []DiscountTierConfig `yaml:"bulk"`
	Volume                []DiscountTierConfig `yaml:"volume"`
	Loyalty               []DiscountTierConfig `yaml:"loyalty"`
	ReferralCodes         map[string]float64   `yaml:"referral_codes"`
	AdminReferralFraction float64              `yaml:"admin_referral_fraction"`
}

type DiscountTierConfig struct {
	Threshold float64 `yaml:"threshold"`
	Fraction  float64 `yaml:"fraction"`
}

type DistributionConfig struct {
	Default  string         `yaml:"default"`
	Policies []PolicyConfig `yaml:"policies"`
}

type PolicyConfig struct {
	Name             string  `yaml:"name"`
	PlatformPercent  float64 `yaml:"platform_percent"`
	LeadPercent      float64 `yaml:"lead_percent"`
	AdminPoolPercent float64 `yaml:"admin_pool_percent"`
	ReferralPercent  float64 `yaml:"referral_percent"`
}

func MustLoad() *RevenueConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REVENUE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REVENUE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RevenueConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

// ToDomain converts the YAML pricing tree into the engine's snapshot form.
func (c PricingConfig) ToDomain() domain.PricingConfig {
	tiers := make(map[string]domain.PricingTier, len(c.Tiers))
	for _, tier := range c.Tiers {
		tiers[tier.ID] = domain.PricingTier{
			ID:       tier.ID,
			Label:    tier.Label,
			BaseFee:  tier.BaseFee,
			Currency: tier.Currency,
			Enabled:  tier.Enabled,
			Features: tier.Features,
		}
	}
	services := make(map[string]domain.ServiceAddOn, len(c.Services))
	for _, service := range c.Services {
		services[service.ID] = domain.ServiceAddOn{
			ID:       service.ID,
			Label:    service.Label,
			Price:    service.Price,
			Currency: service.Currency,
		}
	}
	return domain.PricingConfig{
		Tiers:                tiers,
		TokenTypeMultipliers: c.TokenTypeMultipliers,
		Services:             services,
		Discounts: domain.DiscountRules{
			Bulk:                  toDomainTiers(c.Discounts.Bulk),
			Volume:                toDomainTiers(c.Discounts.Volume),
			Loyalty:               toDomainTiers(c.Discounts.Loyalty),
			ReferralCodes:         c.Discounts.ReferralCodes,
			AdminReferralFraction: c.Discounts.AdminReferralFraction,
		},
	}
}

func toDomainTiers(tiers []DiscountTierConfig) []domain.DiscountTier {
	out := make([]domain.DiscountTier, len(tiers))
	for i, tier := range tiers {
		out[i] = domain.DiscountTier{
			Threshold: tier.Threshold,
			Fraction:  tier.Fraction,
		}
	}
	return out
}

// ToDomain converts the distribution policy list.
func (c DistributionConfig) ToDomain() []domain.DistributionPolicy {
	policies := make([]domain.DistributionPolicy, len(c.Policies))
	for i, policy := range c.Policies {
		policies[i] = domain.DistributionPolicy{
			Name:             policy.Name,
			PlatformPercent:  policy.PlatformPercent,
			LeadPercent:      policy.LeadPercent,
			AdminPoolPercent: policy.AdminPoolPercent,
			ReferralPercent:  policy.ReferralPercent,
		}
	}
	return policies
}
