package routes

import "strings"

const (
	// DefaultTypeLabel is the type assigned to path-template parameters when
	// no richer type information is available.
	DefaultTypeLabel = "str"

	// pathParamDescPrefix prefixes synthesized path-parameter descriptions.
	pathParamDescPrefix = "Path parameter: "
)

// TemplateParams extracts the {param} placeholders from a path template, in
// order of appearance. Each is required, typed DefaultTypeLabel, and carries
// a synthesized "Path parameter: <name>" description.
//
// Only whole path segments of the form {param} count: a braced substring
// inside a larger segment (e.g. "/file_{name}") is not a parameter.
// Extraction is best-effort, not validation: malformed segments and empty
// placeholders are skipped, and a name repeated in one template contributes
// a single parameter.
func TemplateParams(template string) []Parameter {
	if !strings.Contains(template, "{") {
		return nil
	}

	var params []Parameter
	seen := make(map[string]bool)

	for _, seg := range strings.Split(template, "/") {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		name := seg[1 : len(seg)-1]

		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		params = append(params, Parameter{
			Name:        name,
			Required:    true,
			Type:        DefaultTypeLabel,
			Description: pathParamDescPrefix + name,
		})
	}

	return params
}

// MergeParams reconciles the parameters a host declared for a route with the
// {param} placeholders of its path template.
//
// Declared parameters come first, in declaration order, with their type label
// normalized; a declared path parameter with no description gets the
// synthesized fallback. Template parameters the host did not declare follow,
// in template order. The result contains no duplicate names: a repeated
// declared name contributes only its first occurrence.
func MergeParams(path string, declared []Parameter) []Parameter {
	tmpl := TemplateParams(path)

	inTemplate := make(map[string]bool, len(tmpl))
	for _, p := range tmpl {
		inTemplate[p.Name] = true
	}

	merged := make([]Parameter, 0, len(declared)+len(tmpl))
	seen := make(map[string]bool, len(declared))

	for _, p := range declared {
		if p.Name == "" || seen[p.Name] {
			continue
		}
		seen[p.Name] = true

		p.Type = NormalizeTypeLabel(p.Type)
		if p.Description == "" && inTemplate[p.Name] {
			p.Description = pathParamDescPrefix + p.Name
		}
		merged = append(merged, p)
	}

	for _, p := range tmpl {
		if !seen[p.Name] {
			merged = append(merged, p)
		}
	}

	return merged
}

// NormalizeTypeLabel reduces a language-level type representation to the bare
// type name: runtime-class wrapper decoration ("<class 'int'>") and the
// generic-container module qualifier ("typing.List[int]") are stripped.
func NormalizeTypeLabel(label string) string {
	label = strings.ReplaceAll(label, "typing.", "")
	label = strings.ReplaceAll(label, "<class '", "")
	label = strings.ReplaceAll(label, "'>", "")
	return label
}
