package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/vattr/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   docBase + "E102",
	},

	// ============================================
	// Render Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "Writing the rendered HTML to its destination failed.",
		DocURL:   docBase + "E200",
	},
	"E201": {
		Category: CategoryRender,
		Message:  "Unknown view kind",
		Detail:   "The view union holds a kind the renderer does not know. Build views with IntoView instead of by hand.",
		DocURL:   docBase + "E201",
	},

	// ============================================
	// Publish Errors (E300-E319)
	// ============================================

	"E300": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		DocURL:   docBase + "E300",
	},
	"E301": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
		Detail:   "Targets are a file path or s3://bucket/key.",
		DocURL:   docBase + "E301",
	},

	// ============================================
	// CLI Errors (E400-E419)
	// ============================================

	"E400": {
		Category: CategoryCLI,
		Message:  "Invalid input",
		DocURL:   docBase + "E400",
	},
	"E401": {
		Category: CategoryCLI,
		Message:  "Server failed",
		DocURL:   docBase + "E401",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
