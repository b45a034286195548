package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime (E001-E019)

	"E001": {
		Category:   CategoryRuntime,
		Message:    "Server failed to listen",
		Suggestion: "Check that the port is free, or set server.port / EPOUVANTE_SERVER_PORT",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Graceful shutdown did not finish in time",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Page render failed",
	},

	// Config (E100-E119)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config file could not be read",
		Suggestion: "Check the path given to --config and the file permissions",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Asset manifest could not be loaded",
		Suggestion: "Remove static.manifest to serve assets without fingerprints",
	},

	// Catalog (E120-E139)

	"E120": {
		Category:   CategoryCatalog,
		Message:    "Catalog file could not be read",
		Suggestion: "Check catalog.path, or leave it empty to use the built-in catalog",
	},
	"E121": {
		Category: CategoryCatalog,
		Message:  "Catalog could not be parsed",
	},
	"E122": {
		Category: CategoryCatalog,
		Message:  "Catalog content is invalid",
	},
	"E123": {
		Category: CategoryCatalog,
		Message:  "Catalog watcher failed",
	},

	// Newsletter (E140-E159)

	"E140": {
		Category: CategoryNewsletter,
		Message:  "Invalid email address",
	},
	"E141": {
		Category:   CategoryNewsletter,
		Message:    "Subscriber store could not be opened",
		Suggestion: "Check newsletter.bolt_path, or set newsletter.store to memory",
	},
	"E142": {
		Category: CategoryNewsletter,
		Message:  "Subscriber could not be saved",
	},

	// Export (E160-E179)

	"E160": {
		Category: CategoryExport,
		Message:  "Route could not be rendered",
	},
	"E161": {
		Category: CategoryExport,
		Message:  "Export output could not be written",
	},

	// Publish (E180-E199)

	"E180": {
		Category:   CategoryPublish,
		Message:    "AWS configuration could not be loaded",
		Suggestion: "Set AWS_REGION, AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY",
	},
	"E181": {
		Category: CategoryPublish,
		Message:  "Upload to S3 failed",
	},
	"E182": {
		Category:   CategoryPublish,
		Message:    "No bucket configured",
		Suggestion: "Pass --bucket or set publish.bucket",
	},
	"E183": {
		Category:   CategoryPublish,
		Message:    "Prune needs a key prefix",
		Suggestion: "Pass --prefix, or drop --prune to keep the rest of the bucket",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
