// Package config manages the user-level tool configuration stored at
// ~/.cprasterctl/config.yaml. Values can be overridden through CPRASTER_*
// environment variables via viper's automatic env binding.
package config
