// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/subsample/counts"
	"github.com/ava-labs/subsample/rarefy"
	"github.com/ava-labs/subsample/utils/logging"
)

// Config of the subsample command.
type Config struct {
	Input   string         `json:"input"`
	Format  string         `json:"format"`
	Rarefy  rarefy.Config  `json:"rarefy"`
	Logging logging.Config `json:"logging"`
}

// BuildViper returns the viper environment built from [fs], the environment
// and, if one is specified, a config file. Flags take precedence over the
// environment, which takes precedence over the config file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.GetString(ConfigFileKey) != "" {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// GetConfig reads the command's configuration out of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	depth, err := getDepth(v)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Input:  v.GetString(InputKey),
		Format: v.GetString(FormatKey),
		Rarefy: rarefy.Config{
			Depth:           depth,
			WithReplacement: v.GetBool(WithReplacementKey),
			Seed:            v.GetUint64(SeedKey),
			Workers:         v.GetInt(WorkersKey),
			KeepShallow:     v.GetBool(KeepShallowKey),
		},
	}

	switch strings.ToLower(config.Format) {
	case formatAuto:
		config.Format = rarefy.FormatFromPath(config.Input)
	case rarefy.FormatJSON, rarefy.FormatYAML:
		config.Format = strings.ToLower(config.Format)
	default:
		return Config{}, fmt.Errorf("%w: %q", rarefy.ErrUnknownFormat, config.Format)
	}

	if err := config.Rarefy.Verify(); err != nil {
		return Config{}, err
	}

	config.Logging, err = getLoggingConfig(v)
	return config, err
}

// getDepth validates the depth as a draw size. Strings and floats are checked
// as number literals, so fractional, negative and non-numeric depths are
// rejected rather than truncated.
func getDepth(v *viper.Viper) (uint64, error) {
	var raw any
	switch value := v.Get(DepthKey).(type) {
	case string:
		raw = json.Number(strings.TrimSpace(value))
	case float32:
		raw = json.Number(strconv.FormatFloat(float64(value), 'f', -1, 32))
	case float64:
		raw = json.Number(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		raw = value
	}

	depth, err := counts.ParseDrawSize(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", DepthKey, err)
	}
	return depth, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.DefaultConfig()

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return config, err
	}
	config.DisplayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return config, err
	}

	config.File = os.ExpandEnv(v.GetString(LogFileKey))
	config.MaxSize = v.GetInt(LogMaxSizeKey)
	config.MaxFiles = v.GetInt(LogMaxFilesKey)
	config.MaxAge = v.GetInt(LogMaxAgeKey)
	config.Compress = v.GetBool(LogCompressKey)
	return config, nil
}
