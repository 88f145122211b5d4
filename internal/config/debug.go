package config

import "os"

func IsDebug() bool {
	return os.Getenv("MORDOMO_DEBUG") == "1"
}
