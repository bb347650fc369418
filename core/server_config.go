/*
 * ULP BFF
 * Copyright (C) 2023 ULP community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const defaultConfigFile = "ulp.yaml"
const configFileFlag = "configfile"

const defaultPrefix = "ULP_"
const defaultDelimiter = "."
const configValueListSeparator = ","

// ServerConfig has global server settings.
type ServerConfig struct {
	Verbosity    string     `koanf:"verbosity"`
	LoggerFormat string     `koanf:"loggerformat"`
	Strictmode   bool       `koanf:"strictmode"`
	HTTP         HTTPConfig `koanf:"http"`
	configMap    *koanf.Koanf
}

// HTTPConfig contains configuration for the HTTP interface, e.g. the address it listens on.
type HTTPConfig struct {
	// Address holds the interface address the HTTP service must be bound to, in the format of `interface:port` (e.g. localhost:3000).
	Address string `koanf:"address"`
	// CORS holds the configuration for Cross Origin Resource Sharing.
	CORS HTTPCORSConfig `koanf:"cors"`
	// InternalRateLimiter enables the token-bucket rate limiter on endpoints that create records in the backing systems.
	InternalRateLimiter bool `koanf:"internalratelimiter"`
}

// HTTPCORSConfig contains configuration for Cross Origin Resource Sharing.
type HTTPCORSConfig struct {
	// Origin specifies the AllowOrigin option. If no origins are given CORS is considered to be disabled.
	Origin []string `koanf:"origin"`
}

// Enabled returns whether CORS is enabled according to this configuration.
func (cors HTTPCORSConfig) Enabled() bool {
	return len(cors.Origin) > 0
}

// NewServerConfig creates an initialized empty server config
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		configMap: koanf.New(defaultDelimiter),
	}
}

// loadConfigMap populates the configMap with values from the config file, environment and flags
func (cfg *ServerConfig) loadConfigMap(flags *pflag.FlagSet) error {
	if err := loadDefaultsFromFlagset(cfg.configMap, flags); err != nil {
		return err
	}

	if err := loadFromFile(cfg.configMap, resolveConfigFilePath(flags)); err != nil {
		return err
	}

	if err := loadFromEnv(cfg.configMap); err != nil {
		return err
	}

	return loadFromFlagSet(cfg.configMap, flags)
}

// Load loads the server config following the load order of configfile, env vars and then commandline params
func (cfg *ServerConfig) Load(flags *pflag.FlagSet) error {
	if err := cfg.loadConfigMap(flags); err != nil {
		return err
	}

	if err := cfg.configMap.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		FlatPaths: false,
	}); err != nil {
		return err
	}

	// Configure logging.
	lvl, err := logrus.ParseLevel(cfg.Verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	switch cfg.LoggerFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid formatter: '%s'", cfg.LoggerFormat)
	}

	return nil
}

// InjectIntoEngine takes the loaded config and sets the engine's config struct
func (cfg *ServerConfig) InjectIntoEngine(e Injectable) error {
	return cfg.configMap.UnmarshalWithConf(e.ConfigKey(), e.Config(), koanf.UnmarshalConf{
		FlatPaths: false,
	})
}

// resolveConfigFilePath resolves the path of the config file using the following sources:
// 1. commandline params (using the given flags)
// 2. environment vars,
// 3. default location.
func resolveConfigFilePath(flags *pflag.FlagSet) string {
	k := koanf.New(defaultDelimiter)

	// load env flags
	e := env.Provider(defaultPrefix, defaultDelimiter, func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, defaultPrefix)), "_", defaultDelimiter, -1)
	})
	// can't return error
	_ = k.Load(e, nil)

	// load cmd flags, without a parser, no error can be returned
	_ = k.Load(posflag.Provider(flags, defaultDelimiter, k), nil)

	return k.String(configFileFlag)
}

// FlagSet returns the default server flags
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.String(configFileFlag, defaultConfigFile, "ULP BFF config file")
	flagSet.String("verbosity", "info", "Log level (trace, debug, info, warn, error)")
	flagSet.String("loggerformat", "text", "Log format (text, json)")
	flagSet.Bool("strictmode", false, "When set, insecure settings are forbidden.")
	flagSet.String("http.address", ":3000", "Address and port the server will be listening to")
	flagSet.StringSlice("http.cors.origin", nil, "When set, enables CORS from the specified origins on the HTTP interface.")
	flagSet.Bool("http.internalratelimiter", true, "When set, endpoints that create records in the backing systems are rate-limited.")
	return flagSet
}

// PrintConfig returns the current config in string form
func (cfg *ServerConfig) PrintConfig() string {
	return cfg.configMap.Sprint()
}
