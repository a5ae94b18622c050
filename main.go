package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/blogdeck/internal/commands"
	"github.com/gerunddev/blogdeck/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		commands.Browse(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "browse", "read":
		commands.Browse(os.Args[2:])
	case "list", "ls":
		commands.List(os.Args[2:])
	case "show":
		commands.Show(os.Args[2:])
	case "convert":
		commands.Convert(os.Args[2:])
	case "export":
		commands.Export(os.Args[2:])
	case "theme":
		commands.Theme(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("blogdeck v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`blogdeck - A terminal reader for a small blog

Usage:
  blogdeck [command] [options]

Commands:
  browse      Open the interactive reader (default)
  list        List posts (use --category to filter)
  show        Print a single post (use --html for raw markup)
  convert     Convert a markup file to HTML (use --expect to check a golden file)
  export      Write the post index as YAML (use --out to write a file)
  theme       Show the theme, or set it with toggle, light or dark
  version     Show version information
  help        Show this help message

Examples:
  blogdeck
  blogdeck browse --category Tech
  blogdeck list --category Food
  blogdeck show 2
  blogdeck convert post.md --expect post.golden.html
  blogdeck export --out index.yaml
  blogdeck theme toggle

Configuration:
  Config file: %s
  Prefs file:  %s

For more information, visit: https://github.com/gerunddev/blogdeck
`, config.ConfigPath(), config.PrefsFilePath())
	fmt.Print(usage)
}
