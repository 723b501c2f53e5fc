package filesystem_test

import (
	"fmt"
	"log"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
)

// Example_memoryFileSystem demonstrates using MemoryFileSystem for testing
func Example_memoryFileSystem() {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile("Model.edmx", "<edmx:Edmx />")

	content, err := mfs.ReadFile("Model.edmx")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Model: %s\n", string(content))

	// Output:
	// Model: <edmx:Edmx />
}

// Example_fileSystemProvider demonstrates replacing a file through the abstraction
func Example_fileSystemProvider() {
	// Works with any FileSystemProvider implementation
	rewrite := func(fsProvider filesystem.FileSystemProvider, path string, data []byte) error {
		info, err := fsProvider.Stat(path)
		if err != nil {
			return err
		}
		return fsProvider.WriteFileAtomic(path, data, info.Mode())
	}

	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile("Model.edmx", "<old />")

	if err := rewrite(mfs, "Model.edmx", []byte("<new />")); err != nil {
		log.Fatal(err)
	}

	content, _ := mfs.ReadFile("Model.edmx")
	fmt.Printf("Content: %s\n", content)
	fmt.Printf("Writes: %d\n", mfs.Writes())

	// Output:
	// Content: <new />
	// Writes: 1
}

// Example_memoryFileSystem_failedWrite demonstrates injecting a write failure
func Example_memoryFileSystem_failedWrite() {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile("Model.edmx", "<original />")
	mfs.WriteErr = fmt.Errorf("disk full")

	err := mfs.WriteFileAtomic("Model.edmx", []byte("<new />"), 0644)
	fmt.Println("Error:", err)

	content, _ := mfs.ReadFile("Model.edmx")
	fmt.Printf("Content: %s\n", content)

	// Output:
	// Error: disk full
	// Content: <original />
}
