// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"runtime"

	"github.com/spf13/pflag"

	"github.com/ava-labs/subsample/utils/logging"
)

const (
	EnvPrefix = "subsample"

	formatAuto = "auto"
)

// BuildFlagSet returns the complete set of flags for the subsample command
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("subsample", pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	logDefaults := logging.DefaultConfig()

	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Input
	fs.String(InputKey, "-", "Path of the count table to rarefy. \"-\" reads from stdin")
	fs.String(FormatKey, formatAuto, "Format of the count table. One of {json, yaml, auto}. auto picks the format from the input's file extension")

	// Rarefaction
	fs.Uint64(DepthKey, 0, "Number of items to draw from every sample. If 0, the smallest sample total is used")
	fs.Bool(WithReplacementKey, false, "If true, draw items with replacement (multinomial) instead of without replacement")
	fs.Uint64(SeedKey, 0, "Seed for reproducible subsampling. If 0, fresh randomness is used")
	fs.Int(WorkersKey, runtime.NumCPU(), "Maximum number of samples rarefied concurrently")
	fs.Bool(KeepShallowKey, false, "If true, samples holding fewer items than the depth are kept unchanged instead of dropped")

	// Logging
	fs.String(LogLevelKey, logDefaults.LogLevel.String(), "The log level for the log file. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, logDefaults.DisplayLevel.String(), "The log display level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFileKey, "", "Path of the rotating log file. If empty, logs are only displayed")
	fs.Int(LogMaxSizeKey, logDefaults.MaxSize, "Maximum log file size in megabytes before it is rotated")
	fs.Int(LogMaxFilesKey, logDefaults.MaxFiles, "Maximum number of rotated log files to keep")
	fs.Int(LogMaxAgeKey, logDefaults.MaxAge, "Maximum number of days to keep rotated log files")
	fs.Bool(LogCompressKey, logDefaults.Compress, "If true, compress rotated log files")
}
