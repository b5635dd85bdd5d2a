package migrations

import (
	"io/fs"
)

func subFS() fs.FS {
	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		// dir is a constant matching the embed pattern
		panic(err)
	}
	return sub
}
