package parameter

import (
	"fmt"
	"strings"

	"github.com/sporadisk/testclock/format"
)

// Validate matches param case-insensitively against validOptions and returns
// the canonical spelling of the option.
func Validate(param string, validOptions []string) (string, error) {
	cleanParam := format.CleanParam(param)

	for _, option := range validOptions {
		if strings.EqualFold(cleanParam, option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}
