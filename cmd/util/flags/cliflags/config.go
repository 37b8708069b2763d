package cliflags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

// ConfigAutoComplete provides auto-completion suggestions for configuration keys.
func ConfigAutoComplete(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string

	for key, description := range types.ConfigDescriptions {
		if strings.HasPrefix(key, strings.ToLower(toComplete)) {
			completions = append(completions, fmt.Sprintf("%s\t%s", key, description))
		}
	}
	sort.Strings(completions)

	return completions, cobra.ShellCompDirectiveNoFileComp
}
