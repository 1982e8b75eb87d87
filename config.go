package main

import (
	"errors"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"go.goblog.app/sharer/pkgs/sharer"
)

type config struct {
	Server      *configServer `mapstructure:"server"`
	Popup       *configPopup  `mapstructure:"popup"`
	Providers   []string      `mapstructure:"providers"`
	Debug       bool          `mapstructure:"debug"`
	initialized bool
}

type configServer struct {
	Logging        bool   `mapstructure:"logging"`
	LogFile        string `mapstructure:"logFile"`
	Port           int    `mapstructure:"port"`
	PublicAddress  string `mapstructure:"publicAddress"`
	publicHostname string
}

type configPopup struct {
	ScreenWidth  int  `mapstructure:"screenWidth"`
	ScreenHeight int  `mapstructure:"screenHeight"`
	Focus        bool `mapstructure:"focus"`
}

func (a *sharerApp) loadConfigFile(file string) error {
	// Use viper to load the config file
	v := viper.New()
	if file != "" {
		// Use config file from the flag
		v.SetConfigFile(file)
	} else {
		// Search in default locations
		v.SetConfigName("config")
		v.AddConfigPath("./config/")
	}
	// Defaults, viper only resolves environment variables of known keys
	setConfigDefaults(v, createDefaultConfig())
	// Environment overrides, e.g. SHARER_SERVER_PORT
	v.SetEnvPrefix("sharer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Read config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return err
		}
		// No config file, defaults only
	}
	// Unmarshal config
	a.cfg = createDefaultConfig()
	return v.Unmarshal(a.cfg)
}

func setConfigDefaults(v *viper.Viper, c *config) {
	v.SetDefault("server.logging", c.Server.Logging)
	v.SetDefault("server.logFile", c.Server.LogFile)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("server.publicAddress", c.Server.PublicAddress)
	v.SetDefault("popup.screenWidth", c.Popup.ScreenWidth)
	v.SetDefault("popup.screenHeight", c.Popup.ScreenHeight)
	v.SetDefault("popup.focus", c.Popup.Focus)
	v.SetDefault("providers", []string{})
	v.SetDefault("debug", c.Debug)
}

func (a *sharerApp) initConfig() error {
	if a.cfg == nil {
		a.cfg = createDefaultConfig()
	}
	if a.cfg.initialized {
		return nil
	}
	if a.cfg.Server == nil {
		a.cfg.Server = createDefaultConfig().Server
	}
	// Parse addresses and hostnames
	if a.cfg.Server.PublicAddress == "" {
		return errors.New("no public address configured")
	}
	publicURL, err := url.Parse(a.cfg.Server.PublicAddress)
	if err != nil {
		return errors.New("invalid public address: " + err.Error())
	}
	a.cfg.Server.PublicAddress = strings.TrimSuffix(a.cfg.Server.PublicAddress, "/")
	a.cfg.Server.publicHostname = publicURL.Hostname()
	// Check providers
	if len(a.cfg.Providers) == 0 {
		a.cfg.Providers = sharer.Providers()
	}
	if unknown := lo.Reject(a.cfg.Providers, func(p string, _ int) bool {
		return sharer.IsProvider(p)
	}); len(unknown) > 0 {
		return errors.New("unknown providers configured: " + strings.Join(unknown, ", "))
	}
	a.cfg.Providers = lo.Uniq(lo.Map(a.cfg.Providers, func(p string, _ int) string {
		return strings.ToLower(p)
	}))
	// Popup defaults
	if a.cfg.Popup == nil {
		a.cfg.Popup = createDefaultConfig().Popup
	}
	if a.cfg.Popup.ScreenWidth <= 0 || a.cfg.Popup.ScreenHeight <= 0 {
		return errors.New("popup screen size must be positive")
	}
	a.updateLogLevel()
	a.cfg.initialized = true
	a.info("Initialized configuration")
	return nil
}

func createDefaultConfig() *config {
	return &config{
		Server: &configServer{
			Port:          8080,
			PublicAddress: "http://localhost:8080",
			LogFile:       "data/access.log",
		},
		Popup: &configPopup{
			ScreenWidth:  1920,
			ScreenHeight: 1080,
			Focus:        true,
		},
	}
}

func (a *sharerApp) providerEnabled(name string) bool {
	return lo.Contains(a.cfg.Providers, strings.ToLower(name))
}
