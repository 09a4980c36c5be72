// Package prompt implements the interactive console dialogs: source file,
// output folder, export format and table selection.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dbsmedya/goexport/internal/selection"
	"github.com/dbsmedya/goexport/internal/writer"
)

// ErrAborted is returned when the user ends a dialog without choosing,
// either with empty required input or by closing stdin.
var ErrAborted = errors.New("aborted by user")

// databaseExtensions are the file types offered by the source file dialog.
var databaseExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// Prompter runs line-based dialogs on a reader/writer pair. Production code
// uses os.Stdin/os.Stdout, tests inject buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdin returns a Prompter bound to the process terminal.
func NewStdin() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// readLine reads one trimmed input line. A closed input stream aborts the
// dialog instead of spinning on re-prompts.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", ErrAborted
	}
	return line, nil
}

// ChooseFile asks for the source database file. Database files found in
// inputDir are offered as a numbered list; the user picks a number or
// types a path. Empty input aborts.
func (p *Prompter) ChooseFile(inputDir string) (string, error) {
	candidates := listDatabaseFiles(inputDir)

	if len(candidates) > 0 {
		fmt.Fprintf(p.out, "\nDatabase files in %s:\n", inputDir)
		for i, f := range candidates {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, filepath.Base(f))
		}
		fmt.Fprintf(p.out, "\nSelect file (1-%d, or path): ", len(candidates))
	} else {
		fmt.Fprintf(p.out, "\nNo database files found in %s.\n", inputDir)
		fmt.Fprint(p.out, "Path to database file: ")
	}

	for {
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			return "", ErrAborted
		}

		if idx, err := strconv.Atoi(input); err == nil && len(candidates) > 0 {
			if idx >= 1 && idx <= len(candidates) {
				return candidates[idx-1], nil
			}
			fmt.Fprint(p.out, "Invalid choice. Please try again: ")
			continue
		}

		if _, err := os.Stat(input); err != nil {
			fmt.Fprintf(p.out, "File not found: %s. Please try again: ", input)
			continue
		}
		return input, nil
	}
}

// ChooseFolder asks for the output directory, falling back to the
// configured default on empty input.
func (p *Prompter) ChooseFolder(defaultDir string) (string, error) {
	fmt.Fprintf(p.out, "\nOutput folder [%s]: ", defaultDir)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultDir, nil
	}
	return input, nil
}

// ChooseFormat asks for the export format by number or name.
func (p *Prompter) ChooseFormat(available []writer.Format) (writer.Format, error) {
	if len(available) == 0 {
		return "", fmt.Errorf("no export formats available")
	}

	fmt.Fprint(p.out, "\nAvailable export formats:\n")
	for i, f := range available {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, f)
	}
	fmt.Fprintf(p.out, "\nSelect format (1-%d, or name): ", len(available))

	for {
		input, err := p.readLine()
		if err != nil {
			return "", err
		}

		if idx, err := strconv.Atoi(input); err == nil {
			if idx >= 1 && idx <= len(available) {
				return available[idx-1], nil
			}
		} else {
			for _, f := range available {
				if strings.EqualFold(input, string(f)) {
					return f, nil
				}
			}
		}
		fmt.Fprint(p.out, "Invalid choice. Please try again: ")
	}
}

// ChooseTables shows the catalog and reads a selection expression. A single
// table catalog is selected without asking. Re-prompts until the expression
// matches at least one table.
func (p *Prompter) ChooseTables(catalog []string) ([]string, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("no tables found")
	}
	if len(catalog) == 1 {
		fmt.Fprintf(p.out, "\nOnly one table found: %s\n", catalog[0])
		return []string{catalog[0]}, nil
	}

	fmt.Fprintf(p.out, "\nTables found (%d):\n", len(catalog))
	for i, table := range catalog {
		fmt.Fprintf(p.out, "  %2d. %s\n", i+1, table)
	}
	fmt.Fprint(p.out, "\nSelection options:\n")
	fmt.Fprint(p.out, "  - ENTER or 'all': every table\n")
	fmt.Fprint(p.out, "  - numbers: e.g. '1,3,5' or '1-3,7'\n")
	fmt.Fprint(p.out, "  - names: e.g. 'Customers,Orders'\n")

	for {
		fmt.Fprint(p.out, "\nSelect tables: ")
		input, err := p.readLine()
		if err != nil {
			return nil, err
		}

		selected, err := selection.Parse(catalog, input)
		if err != nil || len(selected) == 0 {
			fmt.Fprint(p.out, "No valid tables selected. Please try again.\n")
			continue
		}
		fmt.Fprintf(p.out, "Selected: %d table(s)\n", len(selected))
		return selected, nil
	}
}

// listDatabaseFiles returns the database files directly inside dir,
// sorted by name.
func listDatabaseFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if databaseExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files
}
