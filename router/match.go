package router

import "strings"

// Match reports whether path satisfies pattern and returns the parameter
// bindings. On a mismatch the bindings are empty, never nil.
func Match(pattern, path string) (bool, map[string]string) {
	patternSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")

	if len(patternSegs) != len(pathSegs) {
		return false, map[string]string{}
	}

	params := make(map[string]string)
	for i, seg := range patternSegs {
		if name, ok := paramName(seg); ok {
			params[name] = pathSegs[i]
			continue
		}
		if seg != pathSegs[i] {
			return false, map[string]string{}
		}
	}
	return true, params
}

func paramName(segment string) (string, bool) {
	if len(segment) < 2 || segment[0] != '{' || segment[len(segment)-1] != '}' {
		return "", false
	}
	return segment[1 : len(segment)-1], true
}

// PathParams lists the {name} segments of pattern in order.
func PathParams(pattern string) []string {
	var names []string
	for _, seg := range strings.Split(pattern, "/") {
		if name, ok := paramName(seg); ok {
			names = append(names, name)
		}
	}
	return names
}

// RequiredParams computes the arguments a route needs: its path parameters,
// plus data for POST and PATCH. A batch route needs only its batch parameter.
func RequiredParams(pattern, method, batchParam string) []string {
	if batchParam != "" {
		return []string{batchParam}
	}
	params := PathParams(pattern)
	if method == MethodPost || method == MethodPatch {
		params = append(params, ParamData)
	}
	return params
}
