// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings resolves tool settings from flags, RPY_* environment
// variables, and an optional rpy-tools.yaml file, in that order of
// precedence.
//
// A settings file groups keys by tool:
//
//	log:
//	  level: debug
//	generator:
//	  output: build/game
//	  label-page-size: 15
//	indexer:
//	  main-label: chapters
//
// The matching environment variables are RPY_LOG_LEVEL,
// RPY_GENERATOR_OUTPUT, RPY_INDEXER_MAIN_LABEL and so on.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/rpy-tools/pkg/types"
)

const (
	configName = "rpy-tools"
	envPrefix  = "RPY"

	// Sections of the settings file.
	Generator = "generator"
	Indexer   = "indexer"
	logKey    = "log"
)

// Flag names shared by both tools.
const (
	FlagInput     = "input"
	FlagOutput    = "output"
	FlagMainLabel = "main-label"
	FlagPageSize  = "label-page-size"
	FlagConfig    = "config"
	FlagCatalog   = "catalog"
	FlagSettings  = "settings"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
)

// New returns a viper instance wired for RPY_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads the settings file. An explicit path must exist; otherwise
// rpy-tools.yaml is looked up in the working directory and in
// ~/.config/rpy-tools, and its absence is not an error. It returns the file
// that was used, or "".
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading settings %s: %w", path, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("reading settings: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// BindFlags binds each run flag in fs to section.<flag> and each log flag
// to log.<name>.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, section string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == FlagSettings || f.Name == "help" || f.Name == "version" {
			return
		}
		key := section + "." + f.Name
		if name, ok := strings.CutPrefix(f.Name, "log-"); ok {
			key = logKey + "." + name
		}
		if bErr := v.BindPFlag(key, f); bErr != nil {
			err = fmt.Errorf("binding flag %s: %w", f.Name, bErr)
		}
	})
	return err
}

// NormalizeFlagName lets underscore spellings such as --main_label and
// --label_page_size stand for their dashed names.
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func run(v *viper.Viper, section string) types.RunConfig {
	return types.RunConfig{
		InputDir:  strings.TrimSpace(v.GetString(section + "." + FlagInput)),
		OutputDir: strings.TrimSpace(v.GetString(section + "." + FlagOutput)),
		MainLabel: v.GetString(section + "." + FlagMainLabel),
		PageSize:  v.GetInt(section + "." + FlagPageSize),
	}
}

// GeneratorConfig resolves the generator settings.
func GeneratorConfig(v *viper.Viper) types.GeneratorConfig {
	return types.GeneratorConfig{
		RunConfig:      run(v, Generator),
		CharactersFile: strings.TrimSpace(v.GetString(Generator + "." + FlagConfig)),
	}
}

// IndexerConfig resolves the indexer settings.
func IndexerConfig(v *viper.Viper) types.IndexerConfig {
	return types.IndexerConfig{
		RunConfig:   run(v, Indexer),
		CatalogPath: strings.TrimSpace(v.GetString(Indexer + "." + FlagCatalog)),
	}
}

// LogConfig resolves the logging settings.
func LogConfig(v *viper.Viper) types.LogConfig {
	return types.LogConfig{
		Level:  v.GetString(logKey + ".level"),
		Format: v.GetString(logKey + ".format"),
		File:   v.GetString(logKey + ".file"),
	}
}
