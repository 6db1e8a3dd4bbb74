package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Jumpaku/go-pathfs"
	"github.com/Jumpaku/go-pathfs/gdrive"
	"github.com/Jumpaku/go-pathfs/osfs"
	"github.com/Jumpaku/go-pathfs/pathfsmust"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const rootFolderID = "0ADHyXmFLm9riUk9PVA"

func newDriveFS() *gdrive.FS {
	ctx := context.Background()

	client, err := google.DefaultClient(ctx,
		drive.DriveScope,
	)
	if err != nil {
		log.Panic(err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Panic(err)
	}
	return gdrive.New(driveService, rootFolderID, true)
}

var sc = func() *bufio.Scanner {
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanLines)
	return sc
}()

func step() {
	sc.Scan()
}

func main() {
	// Parse paths written for different platforms
	www := pathfsmust.ParseDirOn(pathfs.Windows, `C:\www\`)
	fmt.Println(www.MustOSPath(pathfs.Unix, pathfs.FlagDriveUnixStyle))
	fmt.Println(www.MustOSPath(pathfs.Windows, pathfs.FlagCygwin))

	// Relative paths between directories
	step()
	html := www.Sub("html/")
	rel, err := html.Clone().MakeRelativeTo(www)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s relative to %s: %s\n", html, www, rel)

	// Resolve a relative directory against the working directory
	step()
	local, err := pathfsmust.ParseDir("./build/").ResolveIn(osfs.New())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Resolved: %s\n", local)

	// Create a directory structure on Google Drive
	driveFS := newDriveFS()
	step()
	dir := pathfsmust.ParseDirOn(pathfs.Unix, "/path/to/directory/")
	if err := dir.Create(driveFS, pathfs.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Created directory: %s\n", dir)

	// List directory contents
	step()
	entries, err := dir.Up().Entries(driveFS)
	if err != nil {
		log.Fatal(err)
	}
	for _, entry := range entries {
		fmt.Println(entry)
	}

	// Find a file by candidate extensions
	step()
	readme, err := dir.File("README").FindExtension(driveFS, "md", "txt")
	if err != nil {
		fmt.Println(err)
	} else {
		fmt.Printf("Found: %s\n", readme)
	}

	// Delete the directory structure (move to trash)
	step()
	deleted, err := pathfsmust.ParseDirOn(pathfs.Unix, "/path/").Delete(driveFS)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Deleted: %v\n", deleted)
}
