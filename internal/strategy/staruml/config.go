// Package staruml implements the StarUML MDJ dialect: a JSON document whose
// nodes are discriminated by a "_type" key, with cross-references expressed
// via the {"$ref": "id"} idiom rather than XML-style idref attributes.
package staruml

import "github.com/umltranslator/translator-go/internal/config"

// Format is the symbol this strategy self-registers under.
const Format = "staruml"

var namespace = config.NewNamespace(map[string]any{
	"discriminator_key": "_type",
	"types": map[string]any{
		"project":        "Project",
		"model":          "UMLModel",
		"class":          "UMLClass",
		"interface":      "UMLInterface",
		"datatype":       "UMLDataType",
		"enumeration":    "UMLEnumeration",
		"primitive_type": "UMLPrimitiveType",
		"attribute":      "UMLAttribute",
		"operation":      "UMLOperation",
		"parameter":      "UMLParameter",
		"association":    "UMLAssociation",
		"generalization": "UMLGeneralization",
		"realization":    "UMLInterfaceRealization",
		"package":        "UMLPackage",
		"interaction":    "UMLInteraction",
		"lifeline":       "UMLLifeline",
		"message":        "UMLMessage",
	},
	"keys": map[string]any{
		"id":             "_id",
		"name":           "name",
		"visibility":     "visibility",
		"owned_elements": "ownedElements",
		"attributes":     "attributes",
		"operations":     "operations",
		"parameters":     "parameters",
		"literals":       "literals",
		"type":           "type",
		"direction":      "direction",
		"end1":           "end1",
		"end2":           "end2",
		"reference":      "reference",
		"role":           "name",
		"source":         "source",
		"target":         "target",
		"represent":      "represent",
		"aggregation":    "aggregation",
		"sort":           "messageSort",
		"kind":           "messageKind",
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
		"real":    "real",
		"float":   "float",
		"string":  "string",
		"boolean": "boolean",
		"char":    "char",
		"void":    "void",
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
