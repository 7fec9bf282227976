package registry

// ID identifies one of the tools the shell can host. The set is closed;
// adding a tool means adding a constant here and a case in every switch
// over ID.
type ID int

const (
	UUIDGenerator ID = iota
	JSONBeautifier
	Base64Converter
)

type entry struct {
	name        string
	description string
}

// entries is indexed by ID and defines the canonical catalog order.
var entries = [...]entry{
	UUIDGenerator: {
		name:        "UUID Generator",
		description: "Generate v4 or v7 UUIDs",
	},
	JSONBeautifier: {
		name:        "JSON Beautifier",
		description: "Validate and pretty-print JSON",
	},
	Base64Converter: {
		name:        "Base64 Converter",
		description: "Encode and decode base64 text",
	},
}

// String returns the display name, which is also the name the launcher
// searches and reports back on selection.
func (id ID) String() string {
	if !id.valid() {
		return ""
	}
	return entries[id].name
}

// Description returns a one-line summary of the tool.
func (id ID) Description() string {
	if !id.valid() {
		return ""
	}
	return entries[id].description
}

func (id ID) valid() bool {
	return id >= 0 && int(id) < len(entries)
}

// All returns every tool in catalog order.
func All() []ID {
	ids := make([]ID, len(entries))
	for i := range entries {
		ids[i] = ID(i)
	}
	return ids
}

// Names returns every display name in catalog order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Parse returns the tool with the given display name.
func Parse(name string) (ID, bool) {
	for i, e := range entries {
		if e.name == name {
			return ID(i), true
		}
	}
	return 0, false
}
