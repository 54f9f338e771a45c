// Package eaxmi implements the Enterprise Architect XMI 2.1 strategy: a
// ConfigNamespace capturing the dialect's tag/attribute vocabulary, an
// xmlpipe tree that walks the parsed document, and the Strategy that wires
// them into the registry.
package eaxmi

import "github.com/umltranslator/translator-go/internal/config"

// Format is the symbol this strategy self-registers under.
const Format = "ea-xmi"

// namespace captures EA-XMI's constant vocabulary: the root tag and its
// version marker, the xmi:id/xmi:idref/xmi:type attribute keys, the
// Extension subtree holding diagrams, plus the table mapping EA's
// Java-flavored primitive type strings onto the canonical PrimitiveKind
// vocabulary. Attribute keys are stored by their local name (the part after
// any namespace prefix), which is what xmlpipe.Element.Attr matches
// against.
var namespace = config.NewNamespace(map[string]any{
	"root": map[string]any{
		"tag":          "XMI",
		"version_attr": "version",
		"version":      "2.1",
	},
	"documentation": map[string]any{
		"tag":           "Documentation",
		"exporter_attr": "exporter",
		"exporter":      "Enterprise Architect",
	},
	"extension": map[string]any{
		"tag":           "Extension",
		"extender_attr": "extender",
		"extender":      "Enterprise Architect",
	},
	"tags": map[string]any{
		"model":             "Model",
		"packaged_element":  "packagedElement",
		"owned_attribute":   "ownedAttribute",
		"owned_operation":   "ownedOperation",
		"owned_parameter":   "ownedParameter",
		"owned_literal":     "ownedLiteral",
		"owned_end":         "ownedEnd",
		"lifeline":          "lifeline",
		"message":           "message",
		"combined_fragment": "combinedFragment",
		"interaction_use":   "interactionUse",
		"operand":           "operand",
		"diagram":           "diagram",
		"diagram_element":   "element",
	},
	"xmi_type": map[string]any{
		"class":            "uml:Class",
		"interface":        "uml:Interface",
		"datatype":         "uml:DataType",
		"enumeration":      "uml:Enumeration",
		"primitive_type":   "uml:PrimitiveType",
		"association":      "uml:Association",
		"generalization":   "uml:Generalization",
		"realization":      "uml:Realization",
		"dependency":       "uml:Dependency",
		"package":          "uml:Package",
		"interaction":      "uml:Interaction",
		"class_diagram":    "ClassDiagram",
		"sequence_diagram": "SequenceDiagram",
	},
	"attrs": map[string]any{
		"id":            "id",
		"idref":         "idref",
		"type":          "type",
		"name":          "name",
		"visibility":    "visibility",
		"multiplicity":  "multiplicity",
		"navigable":     "navigable",
		"is_abstract":   "isAbstract",
		"is_static":     "isStatic",
		"is_read_only":  "isReadOnly",
		"is_derived":    "isDerived",
		"is_query":      "isQuery",
		"client":        "client",
		"supplier":      "supplier",
		"specific":      "specific",
		"general":       "general",
		"type_ref":      "type",
		"direction":     "direction",
		"role":          "role",
		"aggregation":   "aggregation",
		"represents":    "represents",
		"covered":       "covered",
		"send_event":    "sendEvent",
		"receive_event": "receiveEvent",
		"signature":     "signature",
		"sort":          "messageSort",
		"kind":          "messageKind",
		"source":        "source",
		"target":        "target",
		"operator":      "operator",
		"guard":         "guard",
		"referenced":    "referenced",
	},
	"visibility_map": map[string]any{
		"public":    "public",
		"private":   "private",
		"protected": "protected",
		"package":   "package",
	},
	"message_sort_map": map[string]any{
		"synchCall":    "synchCall",
		"asynchCall":   "asynchCall",
		"asynchSignal": "asynchSignal",
		"createMsg":    "createMsg",
		"deleteMsg":    "deleteMsg",
		"reply":        "reply",
	},
	"message_kind_map": map[string]any{
		"complete": "complete",
		"lost":     "lost",
		"found":    "found",
		"unknown":  "unknown",
	},
	"primitive_map": map[string]any{
		"EAJava_int":     "int",
		"EAJava_long":    "int",
		"EAJava_double":  "real",
		"EAJava_float":   "float",
		"EAJava_String":  "string",
		"EAJava_boolean": "boolean",
		"EAJava_char":    "char",
		"EAJava_void":    "void",
	},
})

func mustString(path ...string) string {
	v, err := config.NewProxy(config.NewPath(path...)).ResolveString(namespace)
	if err != nil {
		panic(err)
	}
	return v
}

func mustStringMap(path ...string) map[string]string {
	v, err := config.NewProxy(config.NewPath(path...)).ResolveStringMap(namespace)
	if err != nil {
		panic(err)
	}
	return v
}
