package chatbot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CommandKind variante de comando reconocida.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandReport
	CommandAnnualReport
	CommandCompare
	CommandBestDays
	CommandHelp
)

// Command comando ya separado de sus argumentos.
// Args empieza después de las palabras del comando: en "melhores dias 10 2025"
// Args = ["10", "2025"] aunque en la lista de tokens ocupen las posiciones 2 y 3.
type Command struct {
	Kind CommandKind
	Args []string
}

// Frases de dos palabras: se prueban antes que las de una (coincidencia más larga).
var twoWordCommands = map[[2]string]CommandKind{
	{"relatorio", "anual"}: CommandAnnualReport,
	{"melhores", "dias"}:   CommandBestDays,
}

var oneWordCommands = map[string]CommandKind{
	"relatorio": CommandReport,
	"comparar":  CommandCompare,
	"ajuda":     CommandHelp,
}

// Normalize recorta, pasa a minúsculas, colapsa "relatório" → "relatorio" y separa en tokens.
func Normalize(raw string) []string {
	s := cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "relatório", "relatorio")
	return strings.Fields(s)
}

// Parse resuelve el comando por coincidencia más larga sobre los tokens normalizados.
// Entrada vacía o palabra desconocida → CommandUnknown.
func Parse(raw string) Command {
	tokens := Normalize(raw)
	if len(tokens) == 0 {
		return Command{Kind: CommandUnknown}
	}
	if len(tokens) >= 2 {
		if kind, ok := twoWordCommands[[2]string{tokens[0], tokens[1]}]; ok {
			return Command{Kind: kind, Args: tokens[2:]}
		}
	}
	if kind, ok := oneWordCommands[tokens[0]]; ok {
		return Command{Kind: kind, Args: tokens[1:]}
	}
	return Command{Kind: CommandUnknown, Args: tokens[1:]}
}
