package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyIndexPath indicates a missing index path
	ErrEmptyIndexPath = errors.New("empty index path")

	// ErrEmptyIndexerCommand indicates index generation is enabled without a command
	ErrEmptyIndexerCommand = errors.New("empty indexer command")

	// ErrEmptyExtensions indicates no scan extensions were configured
	ErrEmptyExtensions = errors.New("empty scan extensions")

	// ErrInvalidWorkers indicates an invalid worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrEmptyProjectMarker indicates a missing project marker file name
	ErrEmptyProjectMarker = errors.New("empty project marker")

	// ErrInvalidHistory indicates invalid history settings
	ErrInvalidHistory = errors.New("invalid history settings")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateIndex(&cfg.Index); err != nil {
		errs = append(errs, err)
	}
	if err := validateScan(&cfg.Scan); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(cfg.Project.Marker) == "" {
		errs = append(errs, fmt.Errorf("%w: project.marker is required", ErrEmptyProjectMarker))
	}
	if err := validateHistory(&cfg.History); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateIndex(cfg *IndexConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: index.path is required", ErrEmptyIndexPath))
	}

	if cfg.Generate && len(cfg.Command) == 0 {
		errs = append(errs, fmt.Errorf("%w: index.command is required when index.generate is true", ErrEmptyIndexerCommand))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateScan(cfg *ScanConfig) error {
	var errs []error

	if len(cfg.Extensions) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one extension is required", ErrEmptyExtensions))
	}
	for _, ext := range cfg.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, fmt.Errorf("%w: extensions must be non-empty", ErrEmptyExtensions))
			break
		}
	}

	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: scan.workers cannot be negative, got %d", ErrInvalidWorkers, cfg.Workers))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateHistory(cfg *HistoryConfig) error {
	var errs []error

	if cfg.Enabled && strings.TrimSpace(cfg.Location) == "" {
		errs = append(errs, fmt.Errorf("%w: history.location is required when history is enabled", ErrInvalidHistory))
	}

	if cfg.Keep < 0 {
		errs = append(errs, fmt.Errorf("%w: history.keep cannot be negative, got %d", ErrInvalidHistory, cfg.Keep))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
