// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey      = "config-file"
	InputKey           = "input"
	FormatKey          = "format"
	DepthKey           = "depth"
	WithReplacementKey = "with-replacement"
	SeedKey            = "seed"
	WorkersKey         = "workers"
	KeepShallowKey     = "keep-shallow"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFileKey         = "log-file"
	LogMaxSizeKey      = "log-max-size"
	LogMaxFilesKey     = "log-max-files"
	LogMaxAgeKey       = "log-max-age"
	LogCompressKey     = "log-compress"
)
