package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Tree Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryTree,
		Message:  "Unknown node handle",
		Detail:   "The handle does not refer to a node owned by this document.",
	},
	"E002": {
		Category: CategoryTree,
		Message:  "Node is not a child of the given parent",
		Detail:   "RemoveChild and InsertBefore require the reference node to be a direct child of the parent.",
	},
	"E003": {
		Category: CategoryTree,
		Message:  "Hierarchy request rejected",
		Detail:   "A node cannot be inserted into itself, into one of its descendants, or below a text or comment node.",
	},
	"E004": {
		Category: CategoryTree,
		Message:  "Node is not an element",
		Detail:   "Attributes, properties, styles, and listeners exist only on element nodes.",
	},
	"E005": {
		Category: CategoryTree,
		Message:  "Invalid tag name",
		Detail:   "Element tag names must be non-empty and must not contain whitespace.",
	},

	// ============================================
	// Input Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryInput,
		Message:  "Tree file could not be read",
		Detail:   "The file does not exist or is not readable.",
	},
	"E021": {
		Category: CategoryInput,
		Message:  "Tree file could not be decoded",
		Detail:   "Tree files are YAML or JSON documents describing one root node.",
	},
	"E022": {
		Category: CategoryInput,
		Message:  "Invalid node description",
		Detail:   "A node sets both text and children, or is missing a selector where one is required.",
	},

	// ============================================
	// CLI Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "Check the command usage with --help.",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
