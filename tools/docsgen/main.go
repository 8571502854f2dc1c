package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bonfirectl/bonfire/internal/settings"
)

// Notes holds hand-written prose that is merged with the settings table.
type Notes struct {
	Title     string            `yaml:"title"`
	Intro     string            `yaml:"intro"`
	Variables map[string]string `yaml:"variables"`
}

type Row struct {
	Name    string
	Kind    string
	Default string
	Legacy  string
	Secret  bool
	Usage   string
	More    string
}

type TemplateData struct {
	Notes
	Rows    []Row
	Date    string
	Version string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}
	docs := os.Args[1]

	data, err := os.ReadFile(filepath.Join(docs, "templates", "settings.yaml"))
	if err != nil {
		panic(err)
	}
	var notes Notes
	if err := yaml.Unmarshal(data, &notes); err != nil {
		panic(err)
	}

	metadata := TemplateData{
		Notes:   notes,
		Rows:    rows(notes),
		Date:    time.Now().Format("January 2, 2006"),
		Version: getVersion(),
	}

	out := filepath.Join(docs, "settings.md")
	file, err := os.Create(out)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	fmt.Println("Generating", out)
	tmpl, err := template.ParseFiles(filepath.Join(docs, "templates", "settings.md.tmpl"))
	if err != nil {
		panic(err)
	}
	if err := tmpl.Execute(file, metadata); err != nil {
		panic(err)
	}
}

// rows flattens settings.Table in declaration order.
func rows(notes Notes) []Row {
	out := make([]Row, 0, len(settings.Table))
	for _, d := range settings.Table {
		def := d.Default
		if d.NoDefault {
			def = ""
		}
		legacy := d.Legacy
		if d.LegacyFormat != "" {
			legacy = fmt.Sprintf(d.LegacyFormat, "$"+d.Legacy)
		}
		out = append(out, Row{
			Name:    d.Name,
			Kind:    d.Kind.String(),
			Default: def,
			Legacy:  legacy,
			Secret:  d.Secret,
			Usage:   d.Usage,
			More:    notes.Variables[d.Name],
		})
	}
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
