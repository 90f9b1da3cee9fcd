package core

import "errors"

// CollectInputs drops repeated paths and patterns, keeping the first
// occurrence. Arguments are taken verbatim.
func CollectInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("no paths provided")
	}

	seen := make(map[string]struct{})
	order := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == "" {
			return nil, errors.New("empty path")
		}

		if _, ok := seen[arg]; !ok {
			seen[arg] = struct{}{}
			order = append(order, arg)
		}
	}

	return order, nil
}
