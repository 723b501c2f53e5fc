package services

import (
	"testing"

	"github.com/vvka-141/edmxtidy/internal/checksum"
	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/internal/logging"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

func BenchmarkRun_StorageModel(b *testing.B) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	svc := NewReconcileService(mfs, logging.NewNullLogger(), checksum.New())
	opts := edmxtidy.Options{InputPath: modelPath, SortMethod: edmxtidy.SortStorageModel, Check: true}
	mfs.AddFile(modelPath, modelEDMX)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Run(opts); err != nil {
			b.Fatal(err)
		}
	}
}
