// Package dotenv loads environment files before configuration is read.
package dotenv

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads the given env files into the process environment, defaulting to
// ".env" in the working directory. A missing file is not an error; the
// credential may already be in the environment.
func Load(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			log.Debugf("no env file loaded from %s: %v", p, err)
		}
	}
}
