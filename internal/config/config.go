// Package config holds the site settings the auditor checks generated pages
// against, and the viper-based loader that can override them.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SITECHECK_SITE_URL.
const EnvPrefix = "sitecheck"

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Configuration keys.
const (
	KeySiteURL        = "site_url"
	KeySiteName       = "site_name"
	KeyTwitterHandle  = "twitter_handle"
	KeySocialProfiles = "social_profiles"
	KeyFoundingDate   = "founding_date"
	KeyRequiredPages  = "required_pages"
)

// Site describes what the generated pages should declare about the site.
type Site struct {
	SiteURL        string   `mapstructure:"site_url"`
	SiteName       string   `mapstructure:"site_name"`
	TwitterHandle  string   `mapstructure:"twitter_handle"`
	SocialProfiles []string `mapstructure:"social_profiles"`
	FoundingDate   string   `mapstructure:"founding_date"`
	RequiredPages  []string `mapstructure:"required_pages"`
}

// Default returns the compiled-in site settings.
func Default() Site {
	return Site{
		SiteURL:       "https://auditware.io",
		SiteName:      "Auditware",
		TwitterHandle: "@auditware",
		SocialProfiles: []string{
			"https://twitter.com/auditware",
			"https://linkedin.com/company/auditware",
		},
		FoundingDate:  "2020",
		RequiredPages: []string{"index.html", "about", "audits", "sentry"},
	}
}

// Validate checks that the settings can drive an audit.
func (s Site) Validate() error {
	if s.SiteName == "" {
		return errors.New("site name is required")
	}
	if s.SiteURL == "" {
		return errors.New("site URL is required")
	}
	u, err := url.Parse(s.SiteURL)
	if err != nil {
		return fmt.Errorf("invalid site URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("site URL must be an absolute http(s) URL: %s", s.SiteURL)
	}
	if len(s.RequiredPages) == 0 {
		return errors.New("at least one required page must be listed")
	}
	return nil
}

// Load resolves the site settings from defaults, SITECHECK_* environment
// variables and, when path is set, a configuration file. The file format is
// taken from its extension.
func Load(v *viper.Viper, path string) (Site, error) {
	def := Default()
	v.SetDefault(KeySiteURL, def.SiteURL)
	v.SetDefault(KeySiteName, def.SiteName)
	v.SetDefault(KeyTwitterHandle, def.TwitterHandle)
	v.SetDefault(KeySocialProfiles, def.SocialProfiles)
	v.SetDefault(KeyFoundingDate, def.FoundingDate)
	v.SetDefault(KeyRequiredPages, def.RequiredPages)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Site{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var site Site
	if err := v.Unmarshal(&site); err != nil {
		return Site{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, fmt.Errorf("invalid config: %w", err)
	}
	return site, nil
}
