package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
	DocURL     string
}

// Registered codes.
const (
	CodeInvalidElementName = "C001"
	CodeInvalidAttribute   = "C002"
	CodeSharedNode         = "C003"

	CodeDocumentSyntax  = "C020"
	CodeDocumentElement = "C021"
	CodeDocumentContent = "C022"
	CodeDocumentRead    = "C023"

	CodeConfigParse    = "C040"
	CodeConfigNotFound = "C041"
	CodeConfigPort     = "C042"
	CodeConfigLevel    = "C043"
	CodeConfigWrite    = "C044"

	CodeSinkWrite  = "C060"
	CodeSinkUpload = "C061"
	CodeSinkTarget = "C062"

	CodeServerBody    = "C080"
	CodeServerUpgrade = "C081"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Component contract (C001-C019)

	CodeInvalidElementName: {
		Category:   CategoryComponent,
		Message:    "Invalid element name",
		Suggestion: "Pass a non-empty element name, e.g. component.Make(\"div\", nil)",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C001",
	},
	CodeInvalidAttribute: {
		Category:   CategoryComponent,
		Message:    "Invalid attribute syntax",
		Suggestion: "Attributes are written as \"key value\", e.g. \"id main\"",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C002",
	},
	CodeSharedNode: {
		Category:   CategoryComponent,
		Message:    "Element already has a parent",
		Suggestion: "Build a new element for each place it appears",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C003",
	},

	// Documents (C020-C039)

	CodeDocumentSyntax: {
		Category:   CategoryDocument,
		Message:    "Invalid document JSON",
		Suggestion: "Check that the document is valid JSON",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C020",
	},
	CodeDocumentElement: {
		Category:   CategoryDocument,
		Message:    "Document node has no element",
		Suggestion: "Every object node needs an \"element\" key",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C021",
	},
	CodeDocumentContent: {
		Category:   CategoryDocument,
		Message:    "Unsupported content value",
		Suggestion: "\"content\" must be a string or an array of strings and element objects",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C022",
	},
	CodeDocumentRead: {
		Category: CategoryDocument,
		Message:  "Cannot read document",
		DocURL:   "https://vango.dev/docs/htmlc/errors/C023",
	},

	// Configuration (C040-C059)

	CodeConfigParse: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check that htmlc.json is valid JSON",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C040",
	},
	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Configuration not found",
		Suggestion: "Run 'htmlc init' to create htmlc.json",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C041",
	},
	CodeConfigPort: {
		Category:   CategoryConfig,
		Message:    "Invalid port",
		Suggestion: "Use a port between 0 and 65535",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C042",
	},
	CodeConfigLevel: {
		Category:   CategoryConfig,
		Message:    "Invalid log level",
		Suggestion: "Use one of debug, info, warn, error",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C043",
	},
	CodeConfigWrite: {
		Category: CategoryConfig,
		Message:  "Cannot write configuration",
		DocURL:   "https://vango.dev/docs/htmlc/errors/C044",
	},

	// Sinks (C060-C079)

	CodeSinkWrite: {
		Category: CategorySink,
		Message:  "Output write failed",
		DocURL:   "https://vango.dev/docs/htmlc/errors/C060",
	},
	CodeSinkUpload: {
		Category:   CategorySink,
		Message:    "S3 upload failed",
		Suggestion: "Check the bucket name, region and AWS credentials",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C061",
	},
	CodeSinkTarget: {
		Category:   CategorySink,
		Message:    "Invalid output target",
		Suggestion: "Use '-', a file path or s3://bucket/key",
		DocURL:     "https://vango.dev/docs/htmlc/errors/C062",
	},

	// Server (C080-C099)

	CodeServerBody: {
		Category: CategoryServer,
		Message:  "Invalid request body",
		DocURL:   "https://vango.dev/docs/htmlc/errors/C080",
	},
	CodeServerUpgrade: {
		Category: CategoryServer,
		Message:  "WebSocket upgrade failed",
		DocURL:   "https://vango.dev/docs/htmlc/errors/C081",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
