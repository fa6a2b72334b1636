package main

import (
	"os"
	"strconv"
	"strings"

	"postboard/internal/cli"
)

func isPostID(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= 0
}

// rewriteDirectPostLookupArgs turns `postboard <id>` into `postboard posts show <id>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`postboard --url ... 7`), so
// the first positional token is located rather than assuming argv[1].
func rewriteDirectPostLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--url":       true,
		"--ids":       true,
		"--log-file":  true,
		"--log-level": true,
		"--format":    true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Subcommands must precede "--" or cobra treats them as args.
			if i+1 < len(argv) && isPostID(argv[i+1]) {
				return insertShow(argv, i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Unknown flags are skipped without consuming a value so the id isn't swallowed.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if isPostID(a) {
			return insertShow(argv, i)
		}
		return argv
	}
	return argv
}

func insertShow(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:at]...)
	out = append(out, "posts", "show")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = rewriteDirectPostLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
