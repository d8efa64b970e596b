// Operational CLI for the task file: compressed backups, restore, and a
// verify pass that round-trips a backup and compares digests.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"todolist/internal/ops"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:])
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "verify":
		err = cmdVerify(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, os.Args[1]+" failed:", err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	storePath := fs.String("store", filepath.Join("data", "tasks.json"), "path to task file")
	out := fs.String("out", "", "output archive path (.json.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "tasks-"+ts+".json.gz")
	}

	if err := ops.BackupStore(*storePath, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.json.gz)")
	target := fs.String("target", filepath.Join("data", "tasks.json"), "restore target path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreStore(*archive, *target)
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	storePath := fs.String("store", filepath.Join("data", "tasks.json"), "path to task file")
	workDir := fs.String("work-dir", os.TempDir(), "workspace for verify artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "tasks-verify-"+ts+".json.gz")
	restored := filepath.Join(*workDir, "tasks-verify-"+ts+".json")

	if err := ops.BackupStore(*storePath, archive); err != nil {
		return err
	}
	if err := ops.RestoreStore(archive, restored); err != nil {
		return err
	}

	want, err := ops.FileDigest(*storePath)
	if err != nil {
		return err
	}
	got, err := ops.FileDigest(restored)
	if err != nil {
		return err
	}
	if want != got {
		return fmt.Errorf("digest mismatch after restore: src=%s restored=%s", want, got)
	}

	fmt.Println("backup:", archive)
	fmt.Println("digest:", want)
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  todolist-ops backup  --store data/tasks.json --out backups/tasks.json.gz")
	fmt.Println("  todolist-ops restore --archive backups/tasks.json.gz --target data/tasks.json")
	fmt.Println("  todolist-ops verify  --store data/tasks.json --work-dir /tmp")
}
