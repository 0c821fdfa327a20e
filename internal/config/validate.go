package config

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"
)

// StatsRanges lists the accepted dashboard range presets.
var StatsRanges = []string{"today", "7d", "30d", "90d", "ytd"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	for _, proxy := range SplitList(c.Server.TrustedProxies) {
		if !validProxy(proxy) {
			return fmt.Errorf("server.trusted_proxies: %q is not an IP address or CIDR range", proxy)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}
	if c.Redis.Enabled() && c.Redis.Namespace == "" {
		return fmt.Errorf("redis.namespace is required when redis.addr is set")
	}

	return nil
}

func (s *StatsConfig) validate() error {
	if s.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", s.CacheTTL)
	}
	if !slices.Contains(StatsRanges, s.DefaultRange) {
		return fmt.Errorf("default_range %q is not one of %v", s.DefaultRange, StatsRanges)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.PerMinute <= 0 {
		return fmt.Errorf("per_minute must be > 0 (got %d)", r.PerMinute)
	}
	if r.AuthPerMinute <= 0 {
		return fmt.Errorf("auth_per_minute must be > 0 (got %d)", r.AuthPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}

func validProxy(entry string) bool {
	if strings.Contains(entry, "/") {
		_, err := netip.ParsePrefix(entry)
		return err == nil
	}
	_, err := netip.ParseAddr(entry)
	return err == nil
}
