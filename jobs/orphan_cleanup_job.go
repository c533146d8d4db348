package jobs

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/uploads"
)

// ReclaimOrphanedUploads sweeps the upload tree for directories whose owning
// entity no longer exists and removes them. Upload cleanup on delete is best
// effort, so a crash or a locked file can leave a subtree behind; this sweep
// is the reconciliation pass.
func ReclaimOrphanedUploads() {
	log.Println("Running job: ReclaimOrphanedUploads...")
	reclaimKind("providers", func(id uint) bool {
		var count int64
		database.DB.Model(&models.Provider{}).Where("id = ?", id).Count(&count)
		return count > 0
	})
	reclaimKind("clients", func(id uint) bool {
		var count int64
		database.DB.Model(&models.Client{}).Where("id = ?", id).Count(&count)
		return count > 0
	})
}

func reclaimKind(kind string, exists func(id uint) bool) {
	root := filepath.Join(uploads.Default.Root, kind)
	entries, err := os.ReadDir(root)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading %s upload root: %v", kind, err)
		}
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil {
			continue
		}
		if exists(uint(id)) {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		failures := uploads.Default.RemoveTree(dir)
		for _, ferr := range failures {
			log.Printf("⚠️ Orphan cleanup %s: %v", dir, ferr)
		}
		if len(failures) == 0 {
			log.Printf("Reclaimed orphaned upload directory %s", dir)
		}
	}
}
