// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env, with optional .env files read by
// github.com/joho/godotenv. Each struct type is parsed once and cached.
package config
