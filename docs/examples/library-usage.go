package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/igzzr/unix-sytle-utils/pkg/ust"
)

// Example walking through the five operations on a scratch directory.
func main() {
	// Show what the operations do while the example runs.
	ust.SetLogger(ust.NewLogger(os.Stdout, zerolog.DebugLevel))

	tempDir, err := os.MkdirTemp("", "ust-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	fmt.Printf("working in %s\n", tempDir)
	seed(tempDir)

	fmt.Println("\n=== Copy ===")

	// Copy a single file. Like cp, an existing destination is only a
	// problem when no conflict flag says what to do with it.
	src := filepath.Join(tempDir, "site/config.yaml")
	backup := filepath.Join(tempDir, "backup/config.yaml")
	if err := ust.Copy(ust.One(src), backup, ust.FNoSet); err != nil {
		log.Fatalf("Copy failed: %v", err)
	}
	fmt.Println("✓ copied config.yaml, parents created on the way")

	// Copy a whole tree, overwriting only stale files.
	site := filepath.Join(tempDir, "site")
	mirror := filepath.Join(tempDir, "mirror")
	if err := ust.Copy(ust.One(site), mirror, ust.FRecursive|ust.FUpdate); err != nil {
		log.Fatalf("Copy failed: %v", err)
	}
	fmt.Println("✓ mirrored the site tree")

	// A single source may be a glob pattern. The trailing separator asks
	// for a directory to be created and the matches placed inside it.
	logsDir := filepath.Join(tempDir, "logs")
	pattern := filepath.Join(tempDir, "site/*.log")
	if err := ust.Copy(ust.One(pattern), logsDir+"/", ust.FForce); err != nil {
		log.Fatalf("Copy failed: %v", err)
	}
	fmt.Println("✓ collected the log files")

	fmt.Println("\n=== Move ===")

	// Moves rename when they can and fall back to copy then remove.
	if err := ust.Move(ust.One(backup), backup+".old", ust.FNoSet); err != nil {
		log.Fatalf("Move failed: %v", err)
	}
	fmt.Println("✓ renamed the backup")

	fmt.Println("\n=== Grep ===")

	// An anchor naming a file searches its contents; index -1 means every
	// matching line.
	lines, err := ust.Grep(filepath.Join(tempDir, "site/config.yaml"), "^port", -1)
	if err != nil {
		log.Fatalf("Grep failed: %v", err)
	}
	for _, line := range lines {
		fmt.Printf("  matched: %s\n", line)
	}

	fmt.Println("\n=== CmpFile ===")

	same, err := ust.CmpFile(
		filepath.Join(tempDir, "site/config.yaml"),
		filepath.Join(tempDir, "mirror/config.yaml"),
		0,
	)
	if err != nil {
		log.Fatalf("CmpFile failed: %v", err)
	}
	fmt.Printf("✓ mirror matches source: %v\n", same)

	fmt.Println("\n=== Remove ===")

	// rm -r equivalent. Errors carry the tally of work already done.
	if err := ust.Remove(ust.One(mirror), ust.FRecursive); err != nil {
		log.Fatalf("Remove failed: %v", err)
	}
	fmt.Println("✓ removed the mirror tree")

	fmt.Println("\ndone")
}

func seed(base string) {
	files := map[string]string{
		"site/config.yaml":   "port: 8080\nname: demo\n",
		"site/index.html":    "<html></html>\n",
		"site/access.log":    "GET /\n",
		"site/error.log":     "none\n",
		"site/assets/app.js": "console.log('hi')\n",
	}
	for name, content := range files {
		path := filepath.Join(base, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			log.Fatal(err)
		}
	}
}
