// Package papyrus implements the Eclipse Papyrus dialect: a model split
// across two documents, a .uml file holding the semantic model and a
// .notation file holding diagram/shape information that references the
// semantic elements by id. Both halves share one Format and one Strategy;
// detection and the processing tree branch on which root element a given
// DataSource actually parsed to.
package papyrus

import "github.com/umltranslator/translator-go/internal/config"

// Format is the symbol this strategy self-registers under.
const Format = "papyrus"

// namespace captures both the .uml and .notation vocabularies in one
// ConfigNamespace, each under its own top-level section so the two pipe
// trees can share the mustString/mustStringMap helpers without colliding.
var namespace = config.NewNamespace(map[string]any{
	"uml": map[string]any{
		"root_tag": "Model",
		"tags": map[string]any{
			"packaged_element": "packagedElement",
			"owned_attribute":  "ownedAttribute",
			"owned_operation":  "ownedOperation",
			"owned_parameter":  "ownedParameter",
			"owned_literal":    "ownedLiteral",
			"owned_end":        "ownedEnd",
			"lifeline":         "lifeline",
			"message":          "message",
		},
		"xmi_type": map[string]any{
			"class":          "uml:Class",
			"interface":      "uml:Interface",
			"datatype":       "uml:DataType",
			"enumeration":    "uml:Enumeration",
			"primitive_type": "uml:PrimitiveType",
			"association":    "uml:Association",
			"generalization": "uml:Generalization",
			"realization":    "uml:Realization",
			"package":        "uml:Package",
			"interaction":    "uml:Interaction",
		},
		"attrs": map[string]any{
			"id":           "id",
			"type":         "type",
			"name":         "name",
			"visibility":   "visibility",
			"multiplicity": "multiplicity",
			"navigable":    "navigable",
			"client":       "client",
			"supplier":     "supplier",
			"specific":     "specific",
			"general":      "general",
			"type_ref":     "type",
			"direction":    "direction",
			"role":         "role",
			"aggregation":  "aggregation",
			"represents":   "represents",
			"source":       "source",
			"target":       "target",
			"sort":         "messageSort",
			"kind":         "messageKind",
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
			"int":     "int",
			"long":    "int",
			"double":  "real",
			"float":   "float",
			"String":  "string",
			"boolean": "boolean",
			"char":    "char",
			"void":    "void",
		},
	},
	"notation": map[string]any{
		"root_tag": "Diagram",
		"tags": map[string]any{
			"child": "children",
		},
		"attrs": map[string]any{
			"id":               "id",
			"name":             "name",
			"diagram_type":     "type",
			"semantic_element": "semanticElement",
		},
		"diagram_type": map[string]any{
			"class_diagram":    "Class",
			"sequence_diagram": "Sequence",
		},
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
