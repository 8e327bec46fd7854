package clevercloud

import "sort"

// Variable is one name/value pair of an environment.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EnvironmentToMap folds variables into a name-keyed map. On duplicate names
// the later entry wins.
func EnvironmentToMap(vars []Variable) map[string]string {
	env := make(map[string]string, len(vars))

	for _, v := range vars {
		env[v.Name] = v.Value
	}

	return env
}

// EnvironmentFromMap expands a map into variables sorted by name, so the
// same environment always serializes to the same document.
func EnvironmentFromMap(env map[string]string) []Variable {
	vars := make([]Variable, 0, len(env))

	for name, value := range env {
		vars = append(vars, Variable{Name: name, Value: value})
	}

	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})

	return vars
}
