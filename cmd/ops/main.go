package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/jpbranski/clickfluencer/internal/ops"
	"github.com/jpbranski/clickfluencer/internal/save"
	"github.com/jpbranski/clickfluencer/internal/state"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backup":
		if err := cmdBackup(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "backup failed:", err)
			os.Exit(1)
		}
	case "restore":
		if err := cmdRestore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "restore failed:", err)
			os.Exit(1)
		}
	case "drill":
		if err := cmdDrill(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "drill failed:", err)
			os.Exit(1)
		}
	case "inspect":
		if err := cmdInspect(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "inspect failed:", err)
			os.Exit(1)
		}
	case "migrate":
		if err := cmdMigrate(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "migrate failed:", err)
			os.Exit(1)
		}
	case "schema":
		if err := cmdSchema(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "schema failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "clickfluencer-"+ts+".tar.gz")
	}

	if err := ops.BackupDataDir(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreDataDir(*archive, *target)
}

func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "clickfluencer-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "clickfluencer-drill-restore-"+ts)

	if err := ops.BackupDataDir(*dataDir, archive); err != nil {
		return err
	}
	if err := ops.RestoreDataDir(archive, restoreDir); err != nil {
		return err
	}

	srcDigest, err := dirDigest(*dataDir)
	if err != nil {
		return err
	}
	restoreDigest, err := dirDigest(restoreDir)
	if err != nil {
		return err
	}
	if srcDigest != restoreDigest {
		return fmt.Errorf("digest mismatch after restore: src=%s restored=%s", srcDigest, restoreDigest)
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	fmt.Println("digest:", srcDigest)
	return nil
}

// cmdInspect decodes a save file (migrating in memory if needed) and
// prints a human summary. The file on disk is not touched.
func cmdInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	file := fs.String("file", "", "path to a save file (.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	st, changes, err := save.Decode(data)
	if err != nil {
		return err
	}

	fmt.Println("version:  ", state.SchemaVersion)
	fmt.Printf("creds:     %.2f\n", st.Creds)
	fmt.Printf("awards:    %.0f\n", st.Awards)
	fmt.Printf("prestige:  %.0f\n", st.Prestige)
	fmt.Printf("notoriety: %.2f\n", st.Notoriety)
	fmt.Printf("clicks:    %d\n", st.Stats.TotalClicks)
	owned := 0
	for _, g := range st.Generators {
		owned += g.Count
	}
	fmt.Printf("generators: %d units\n", owned)
	if st.LastSaveTime > 0 {
		fmt.Println("last save:", time.UnixMilli(st.LastSaveTime).UTC().Format(time.RFC3339))
	}
	for _, c := range changes {
		fmt.Println("would migrate:", c)
	}
	return nil
}

// cmdMigrate rewrites a save file at the current schema version. The
// original is kept next to it with a .bak suffix.
func cmdMigrate(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	file := fs.String("file", "", "path to a save file (.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	st, changes, err := save.Decode(data)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		fmt.Println("already at", state.SchemaVersion)
		return nil
	}

	if err := os.WriteFile(*file+".bak", data, 0o644); err != nil {
		return err
	}

	st.Version = state.SchemaVersion
	out, err := save.Export(st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*file, out, 0o644); err != nil {
		return err
	}

	for _, c := range changes {
		fmt.Println("applied:", c)
	}
	fmt.Println("migrated to", state.SchemaVersion)
	return nil
}

// cmdSchema prints the JSON Schema of the current save document, for
// external validators and frontend codegen.
func cmdSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reflector := jsonschema.Reflector{ExpandedStruct: true}
	schema := reflector.Reflect(&state.GameState{})
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func dirDigest(root string) (string, error) {
	root = filepath.Clean(root)
	entries := []string{}
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, filepath.ToSlash(rel))
		return nil
	}); err != nil {
		return "", err
	}
	sort.Strings(entries)

	h := sha256.New()
	for _, rel := range entries {
		_, _ = io.WriteString(h, rel)
		_, _ = io.WriteString(h, "\n")
		b, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		if _, err := h.Write(b); err != nil {
			return "", err
		}
		_, _ = io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  clickfluencer-ops backup  --data-dir data --out backups/backup.tar.gz")
	fmt.Println("  clickfluencer-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  clickfluencer-ops drill   --data-dir data --work-dir /tmp")
	fmt.Println("  clickfluencer-ops inspect --file data/clickfluencer_save.json")
	fmt.Println("  clickfluencer-ops migrate --file data/clickfluencer_save.json")
	fmt.Println("  clickfluencer-ops schema")
}
