package errors

import "sort"

// entry is the registered message and detail for one code.
type entry struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their entries. Codes are grouped by
// category letter: B bind, R runtime, T template, S script, C config.
var registry = map[string]entry{
	"B001": {
		Category: CategoryBind,
		Message:  "Unbound field reference",
		Detail:   "An annotation names a field that does not exist in the data record. Every field a template references must be present in the data before binding.",
	},
	"B002": {
		Category: CategoryBind,
		Message:  "Unresolved method reference",
		Detail:   "A click-action annotation names a method that is not in the method table.",
	},
	"B003": {
		Category: CategoryBind,
		Message:  "Unsupported field value",
		Detail:   "Data record fields must be scalars: strings, numbers, booleans, or null.",
	},
	"B004": {
		Category: CategoryBind,
		Message:  "Missing root node",
		Detail:   "The engine needs a root view node to bind. Check the root selector.",
	},

	"R001": {
		Category: CategoryRuntime,
		Message:  "Notification failed",
		Detail:   "A watcher failed while applying a field change. The remaining watchers for that change were not run.",
	},
	"R002": {
		Category: CategoryRuntime,
		Message:  "Event handler failed",
		Detail:   "A click or input handler returned an error.",
	},

	"T001": {
		Category: CategoryTemplate,
		Message:  "Template parse error",
		Detail:   "The template could not be parsed as HTML.",
	},
	"T002": {
		Category: CategoryTemplate,
		Message:  "Unknown starter template",
		Detail:   "vbind init knows the counter and form templates.",
	},
	"T003": {
		Category: CategoryTemplate,
		Message:  "File already exists",
		Detail:   "vbind init does not overwrite existing files. Pick an empty directory.",
	},

	"S001": {
		Category: CategoryScript,
		Message:  "Invalid script",
		Detail:   "The script file could not be decoded. Each step must have exactly one of set, click, input, or expect.",
	},
	"S002": {
		Category: CategoryScript,
		Message:  "Expectation failed",
		Detail:   "The view did not match an expect step after the preceding steps ran.",
	},
	"S003": {
		Category: CategoryScript,
		Message:  "Target not found",
		Detail:   "A step's target selector matched no node in the bound tree.",
	},
	"S004": {
		Category: CategoryScript,
		Message:  "Invalid method operation",
		Detail:   "Script methods are lists of set, add, and toggle operations. add needs a numeric field and toggle a boolean field.",
	},

	"C001": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The vbind configuration is incomplete or inconsistent.",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The configuration file exists but could not be read or parsed.",
	},
}

// Codes returns every registered code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Known reports whether code is registered.
func Known(code string) bool {
	_, ok := registry[code]
	return ok
}
