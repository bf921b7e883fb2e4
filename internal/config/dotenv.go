package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFile is read from the working directory when present.
const dotenvFile = ".env"

// loadEnvironment returns the variables of the dotenv file at path overlaid
// with the process environment. Process variables win, as with
// godotenv.Load. A missing file is not an error.
func loadEnvironment(path string, processEnv []string) (map[string]string, error) {
	environ, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		environ = make(map[string]string)
	} else if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	for name, value := range env.ToMap(processEnv) {
		environ[name] = value
	}

	return environ, nil
}
