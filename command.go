package epipred

import (
	"fmt"
	"strconv"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// renderCommand substitutes one job's concrete values into a validated
// command template. Placeholders the template does not use are ignored.
func renderCommand(template, pepFile, alleleList, outFile, options string, length int) string {
	r := strings.NewReplacer(
		"{peptides}", pepFile,
		"{alleles}", alleleList,
		"{out}", outFile,
		"{options}", options,
		"{length}", strconv.Itoa(length),
	)
	return r.Replace(template)
}

// overrideExec replaces the leading executable token of a command template
// with path, leaving the rest of the template byte for byte intact. This
// points a run at a non-PATH binary without reconstructing the template.
func overrideExec(template, path string) (string, error) {
	words, err := shellquote.Split(template)
	if err != nil {
		return "", fmt.Errorf("command template %q: %v", template, err)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("command template is empty")
	}
	if !strings.HasPrefix(template, words[0]) {
		return "", fmt.Errorf("command template %q: quoted executable token", template)
	}
	return shellquote.Join(path) + template[len(words[0]):], nil
}
