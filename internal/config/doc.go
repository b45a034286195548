// Package config loads the site configuration.
//
// Configuration comes from an optional epouvante.yaml (or .json, .toml) in
// the config directory, overridden by EPOUVANTE_* environment variables:
//
//	server:
//	  port: 8080
//	site:
//	  title: La Petite Maison de l'Épouvante
//	newsletter:
//	  store: bolt
//	  bolt_path: data/subscribers.db
//
//	EPOUVANTE_SERVER_PORT=9000 epouvante serve
//
// Nested keys map to environment names by upper-casing and replacing dots
// with underscores. Missing values fall back to the defaults of New, and
// the result is checked by Validate before it is returned.
package config
