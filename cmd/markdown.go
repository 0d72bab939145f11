package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When the
// renderer fails the raw markdown is still printed: reports must never be
// lost to a styling error.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
