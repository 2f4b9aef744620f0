package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func loadEnv() {
	// A .env in the working directory wins; fall back to one in the user's
	// home directory. Both are development conveniences and optional.
	if err := godotenv.Load(); err != nil {
		if home, err := os.UserHomeDir(); err == nil {
			godotenv.Load(filepath.Join(home, ".picomenu.env"))
		}
	}
}
