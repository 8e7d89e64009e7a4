package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rlch/fppc"
)

// loadConfig loads the explicit config path if given, otherwise the nearest
// .fppc.yaml above the working directory. It returns the config and the
// directory relative paths in it resolve against. A missing config is not an
// error.
func loadConfig(explicit string) (*fppc.Config, string, error) {
	if explicit != "" {
		cfg, err := fppc.LoadConfigFile(explicit)
		if err != nil {
			return nil, "", err
		}

		return cfg, filepath.Dir(explicit), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	path, err := fppc.FindConfig(wd)
	if errors.Is(err, fppc.ErrConfigNotFound) {
		return &fppc.Config{}, wd, nil
	}

	if err != nil {
		return nil, "", err
	}

	cfg, err := fppc.LoadConfigFile(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, filepath.Dir(path), nil
}
