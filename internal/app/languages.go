package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tturner/scandrill/internal/drill"
	"github.com/tturner/scandrill/internal/language"
)

// RunLanguages prints every language code with its direction words.
func RunLanguages(configPath string, out io.Writer) error {
	fileCfg, _, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderLanguages(fileCfg.LanguageTable(), out))
	return nil
}

func renderLanguages(languages language.Table, out io.Writer) string {
	renderer := lipgloss.NewRenderer(out)
	headers := []string{"CODE", "NAME"}
	for _, d := range drill.Directions {
		headers = append(headers, string(d))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Faint(true)).
		Headers(headers...)
	for _, code := range languages.Codes() {
		row := []string{code, language.DisplayName(code)}
		for _, d := range drill.Directions {
			row = append(row, languages.Translate(code, string(d)))
		}
		t.Row(row...)
	}
	return t.Render()
}
