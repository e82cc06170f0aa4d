// Package config manages user-level settings stored at ~/.axle/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output format of listing commands.
package config
