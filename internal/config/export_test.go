package config

import "log/slog"

func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}

func GetEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	return getEnvAsLevel(key, defaultValue)
}

func AllNonEmpty(keyValues map[string]string) error {
	return allNonEmpty(keyValues)
}

func AllNumbers(keyValues map[string]string) error {
	return allNumbers(keyValues)
}
