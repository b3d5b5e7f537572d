// Package config loads the generator configuration.
//
// Values are layered: built-in defaults, then the project's yaml config file,
// then REPOSITORY_GENERATOR_* environment variables (after loading the
// project's .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the config file location relative to the project directory
	DefaultFile = "config/repository-generator.yaml"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "REPOSITORY_GENERATOR_"
)

var (
	namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)
	phpFilePattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\.php$`)
)

// Defaults returns the configuration of a stock Laravel application
func Defaults() models.GeneratorConfig {
	return models.GeneratorConfig{
		AppPath:       "app",
		RootNamespace: "App",
		UserClass:     `App\Models\User`,

		ModelsDirectory:       "app/Models",
		ContractsDirectory:    "app/Contracts",
		RepositoriesDirectory: "app/Repositories",
		PoliciesDirectory:     "app/Policies",

		ModelsNamespace:       `App\Models`,
		ContractsNamespace:    `App\Contracts`,
		RepositoriesNamespace: `App\Repositories`,
		PoliciesNamespace:     `App\Policies`,

		BaseRepositoryFile:    "BaseRepository.php",
		BaseRepositoryClass:   `Lab2view\RepositoryGenerator\BaseRepository`,
		BaseContractFile:      "RepositoryInterface.php",
		BaseContractInterface: `Lab2view\RepositoryGenerator\RepositoryInterface`,
		BasePolicyFile:        "BasePolicy.php",
		BasePolicyClass:       `Lab2view\RepositoryGenerator\BasePolicy`,
	}
}

// Load builds the configuration for the project in projectDir. An empty path
// uses DefaultFile when it exists; an explicit path must exist.
func Load(projectDir, path string) (models.GeneratorConfig, error) {
	cfg := Defaults()

	if err := godotenv.Load(filepath.Join(projectDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("Failed to load .env: %v", err)
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectDir, DefaultFile)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		logrus.Debugf("Loading configuration from %s", path)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, models.NewConfigError(path, fmt.Errorf("failed to parse config: %w", err))
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		logrus.Debug("No configuration file found, using defaults")
	default:
		return cfg, models.NewConfigError(path, fmt.Errorf("failed to read config: %w", err))
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, models.NewConfigError(path, err)
	}

	return cfg, nil
}

// applyEnv overrides values from REPOSITORY_GENERATOR_<KEY> variables
func applyEnv(cfg *models.GeneratorConfig) {
	for key, field := range stringFields(cfg) {
		if value, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok && value != "" {
			*field = value
		}
	}

	if value := os.Getenv(EnvPrefix + "EXCLUDE_MODELS"); value != "" {
		var patterns []string
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		cfg.ExcludeModels = patterns
	}
}

// stringFields maps config keys to the string fields they set
func stringFields(cfg *models.GeneratorConfig) map[string]*string {
	return map[string]*string{
		"app_path":                &cfg.AppPath,
		"root_namespace":          &cfg.RootNamespace,
		"user_class":              &cfg.UserClass,
		"models_directory":        &cfg.ModelsDirectory,
		"contracts_directory":     &cfg.ContractsDirectory,
		"repositories_directory":  &cfg.RepositoriesDirectory,
		"policies_directory":      &cfg.PoliciesDirectory,
		"models_namespace":        &cfg.ModelsNamespace,
		"contracts_namespace":     &cfg.ContractsNamespace,
		"repositories_namespace":  &cfg.RepositoriesNamespace,
		"policies_namespace":      &cfg.PoliciesNamespace,
		"base_repository_file":    &cfg.BaseRepositoryFile,
		"base_repository_class":   &cfg.BaseRepositoryClass,
		"base_contract_file":      &cfg.BaseContractFile,
		"base_contract_interface": &cfg.BaseContractInterface,
		"base_policy_file":        &cfg.BasePolicyFile,
		"base_policy_class":       &cfg.BasePolicyClass,
		"stubs_path":              &cfg.StubsPath,
	}
}

// Validate checks that every required key is set and well formed
func Validate(cfg models.GeneratorConfig) error {
	namespace := validation.Match(namespacePattern).Error("must be a valid PHP namespace")
	phpFile := validation.Match(phpFilePattern).Error("must be a bare .php file name")

	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.AppPath, validation.Required),
		validation.Field(&cfg.RootNamespace, validation.Required, namespace),
		validation.Field(&cfg.UserClass, namespace),
		validation.Field(&cfg.ModelsDirectory, validation.Required),
		validation.Field(&cfg.ContractsDirectory, validation.Required),
		validation.Field(&cfg.RepositoriesDirectory, validation.Required),
		validation.Field(&cfg.PoliciesDirectory, validation.Required),
		validation.Field(&cfg.ModelsNamespace, validation.Required, namespace),
		validation.Field(&cfg.ContractsNamespace, validation.Required, namespace),
		validation.Field(&cfg.RepositoriesNamespace, validation.Required, namespace),
		validation.Field(&cfg.PoliciesNamespace, validation.Required, namespace),
		validation.Field(&cfg.BaseRepositoryFile, validation.Required, phpFile),
		validation.Field(&cfg.BaseRepositoryClass, validation.Required, namespace),
		validation.Field(&cfg.BaseContractFile, validation.Required, phpFile),
		validation.Field(&cfg.BaseContractInterface, validation.Required, namespace),
		validation.Field(&cfg.BasePolicyFile, validation.Required, phpFile),
		validation.Field(&cfg.BasePolicyClass, validation.Required, namespace),
	)
}

// Marshal renders cfg as a publishable yaml document
func Marshal(cfg models.GeneratorConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	header := "# Repository generator configuration.\n" +
		"# Directories are relative to the project root. Base files are looked up\n" +
		"# in the matching contracts/repositories/policies directory.\n"
	return append([]byte(header), body...), nil
}
