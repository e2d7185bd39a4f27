// Package config loads the process configuration from the environment.
package config
