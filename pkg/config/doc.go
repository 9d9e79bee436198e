// Package config loads htmlify's configuration. Built-in defaults,
// the user's config file, HTMLIFY_* environment variables and command
// line flags are layered with koanf and decoded into a Config.
package config
